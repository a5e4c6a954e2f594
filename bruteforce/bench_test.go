package bruteforce_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vigenere/bruteforce"
	"github.com/katalvlaran/vigenere/cipher"
	"github.com/katalvlaran/vigenere/core"
)

// benchmarkRun exhausts a key space of 26^keyLen candidates with the given
// worker count.
func benchmarkRun(b *testing.B, keyLen, workers int) {
	a := core.StandardEnglish()
	k, err := core.NewKey("KEY", a)
	if err != nil {
		b.Fatalf("key: %v", err)
	}
	eng, err := cipher.New(k, cipher.Classic)
	if err != nil {
		b.Fatalf("engine: %v", err)
	}
	ct, err := eng.Encrypt("MEET ME AT THE USUAL PLACE")
	if err != nil {
		b.Fatalf("encrypt: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err = bruteforce.Run(context.Background(), ct, a, keyLen, cipher.Classic,
			bruteforce.WithWorkers(workers))
		if err != nil {
			b.Fatalf("run: %v", err)
		}
	}
}

// BenchmarkRun_Len2Sequential exhausts 26^2 candidates on one goroutine.
func BenchmarkRun_Len2Sequential(b *testing.B) { benchmarkRun(b, 2, 1) }

// BenchmarkRun_Len2Pooled exhausts 26^2 candidates on eight goroutines.
func BenchmarkRun_Len2Pooled(b *testing.B) { benchmarkRun(b, 2, 8) }

// BenchmarkRun_Len3Pooled exhausts 26^3 candidates on eight goroutines.
func BenchmarkRun_Len3Pooled(b *testing.B) { benchmarkRun(b, 3, 8) }

// BenchmarkKeyspace_Key measures candidate materialization alone.
func BenchmarkKeyspace_Key(b *testing.B) {
	a := core.StandardEnglish()
	ks, err := bruteforce.NewKeyspace(a, 8)
	if err != nil {
		b.Fatalf("keyspace: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = ks.Key(uint64(i) % ks.Total()); err != nil {
			b.Fatalf("key: %v", err)
		}
	}
}

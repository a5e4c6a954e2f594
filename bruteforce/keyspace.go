package bruteforce

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vigenere/core"
)

// Keyspace is the lazy, indexable set of all keys of a fixed length over
// one alphabet. It stores no candidates: Key(i) materializes candidate i
// on demand via base-N digit expansion, so memory stays constant no matter
// how large the space is.
//
// Enumeration order: Key(0) < Key(1) < ... lexicographically over
// alphabet-index tuples (counting in base N, most-significant digit
// first). For alphabet "AB" and length 2: AA, AB, BA, BB.
type Keyspace struct {
	alpha    core.Alphabet
	length   int
	total    uint64
	overflow bool
}

// NewKeyspace validates the (alphabet, length) pair and precomputes the
// candidate count.
//
// Errors:
//   - ErrBadKeyLength when keyLength < 1.
//   - core.ErrEmptyAlphabet for a zero-value (unconstructed) alphabet.
//
// Counts beyond uint64 range are flagged rather than wrapped; Overflows
// reports it and Run treats it as exceeding any ceiling.
//
// Complexity: O(keyLength).
func NewKeyspace(a core.Alphabet, keyLength int) (Keyspace, error) {
	if keyLength < 1 {
		return Keyspace{}, fmt.Errorf("%w: %d", ErrBadKeyLength, keyLength)
	}
	if a.Len() == 0 {
		return Keyspace{}, core.ErrEmptyAlphabet
	}

	var (
		base     = uint64(a.Len())
		total    = uint64(1)
		overflow bool
	)
	for i := 0; i < keyLength; i++ {
		if total > math.MaxUint64/base {
			total = math.MaxUint64
			overflow = true
			break
		}
		total *= base
	}

	return Keyspace{alpha: a, length: keyLength, total: total, overflow: overflow}, nil
}

// Total returns the candidate count, saturated at MaxUint64 on overflow.
func (ks Keyspace) Total() uint64 { return ks.total }

// Overflows reports whether the true candidate count exceeds uint64 range.
func (ks Keyspace) Overflows() bool { return ks.overflow }

// Length returns the key length of every candidate.
func (ks Keyspace) Length() int { return ks.length }

// Alphabet returns the alphabet candidates are drawn from.
func (ks Keyspace) Alphabet() core.Alphabet { return ks.alpha }

// Key materializes candidate index as a key string: the base-N digits of
// index, most-significant first, mapped through the alphabet.
//
// Errors: ErrIndexRange when index >= Total().
// Complexity: O(Length()).
func (ks Keyspace) Key(index uint64) (string, error) {
	if index >= ks.total && !ks.overflow {
		return "", fmt.Errorf("%w: %d of %d", ErrIndexRange, index, ks.total)
	}

	var (
		base = uint64(ks.alpha.Len())
		buf  = make([]rune, ks.length)
	)
	for pos := ks.length - 1; pos >= 0; pos-- {
		buf[pos] = ks.alpha.Symbol(int(index % base))
		index /= base
	}

	return string(buf), nil
}

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/vigenere/core"
)

// RandomKey draws a uniform random key of the given length over alphabet
// a. The RNG is local to the call and seeded via WithSeed (seed 0 selects
// the fixed default stream), so equal inputs always yield the same key.
//
// Errors: ErrBadLength for length < 1, ErrOptionViolation via options,
// core sentinels if a is unusable as a key alphabet.
func RandomKey(a core.Alphabet, length int, opts ...Option) (core.Key, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return core.Key{}, cfg.err
	}
	if length < 1 {
		return core.Key{}, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	if a.Len() == 0 {
		return core.Key{}, core.ErrEmptyAlphabet
	}

	var (
		rng     = rngFromSeed(cfg.seed)
		symbols = a.Runes()
		out     = make([]rune, length)
	)
	for i := range out {
		out[i] = symbols[rng.Intn(len(symbols))]
	}

	return core.NewKey(string(out), a)
}

// rngFromSeed applies the seed policy: 0 means the fixed default seed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

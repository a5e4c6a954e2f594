// SPDX-License-Identifier: MIT
// Package bruteforce: sentinel errors, functional options, and the
// ResultSet aggregate.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context via %w.
//   • Invalid option values are recorded inside Options and surfaced as
//     ErrOptionViolation when Run is invoked.

package bruteforce

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vigenere/cipher"
)

// Sentinel errors for key-space construction and search execution.
var (
	// ErrBadKeyLength is returned when the requested key length is < 1.
	ErrBadKeyLength = errors.New("bruteforce: key length must be at least 1")

	// ErrIndexRange is returned when a Keyspace index is >= Total().
	ErrIndexRange = errors.New("bruteforce: keyspace index out of range")

	// ErrSpaceExceeded is returned when alphabet_size^key_length exceeds
	// the configured candidate ceiling. Run fails fast: no enumeration
	// starts.
	ErrSpaceExceeded = errors.New("bruteforce: search space exceeds candidate ceiling")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bruteforce: invalid option supplied")
)

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultMaxCandidates bounds the search space at 2^20 candidates:
	// the A–Z alphabet admits key length 4 (26^4 ≈ 457k) but not 5.
	DefaultMaxCandidates uint64 = 1 << 20

	// DefaultWorkers runs trials sequentially. Parallelism is opt-in via
	// WithWorkers; the output order is identical either way.
	DefaultWorkers = 1
)

// Option configures a Run via functional arguments.
type Option func(*Options)

// Options holds the tunables of a brute-force run.
type Options struct {
	// MaxCandidates is the fail-fast ceiling on alphabet_size^key_length.
	MaxCandidates uint64

	// Workers is the number of goroutines trials are strided across.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults applied.
func DefaultOptions() Options {
	return Options{
		MaxCandidates: DefaultMaxCandidates,
		Workers:       DefaultWorkers,
	}
}

// WithMaxCandidates overrides the search-space ceiling.
// n must be positive; zero is rejected as ErrOptionViolation.
func WithMaxCandidates(n uint64) Option {
	return func(o *Options) {
		if n == 0 {
			o.err = fmt.Errorf("%w: MaxCandidates must be positive", ErrOptionViolation)
			return
		}
		o.MaxCandidates = n
	}
}

// WithWorkers sets the worker-pool size; n < 1 is ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// ResultSet is the ordered outcome of one brute-force run: exactly one
// cipher.Result per candidate key, in enumeration order, unless the run
// was cancelled (Incomplete=true, completed prefix preserved in order).
type ResultSet struct {
	// Ciphertext, Alphabet, KeyLength and Mode echo the run parameters.
	Ciphertext string
	Alphabet   string
	KeyLength  int
	Mode       cipher.Mode

	// Results holds one record per tried candidate, ordered by
	// enumeration index.
	Results []cipher.Result

	// Incomplete is true when cancellation stopped the run before every
	// candidate was tried.
	Incomplete bool
}

// Succeeded counts results whose transform executed without a validation
// error. It implies nothing about plaintext plausibility.
func (s *ResultSet) Succeeded() int {
	n := 0
	for i := range s.Results {
		if s.Results[i].Success {
			n++
		}
	}
	return n
}

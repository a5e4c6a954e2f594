// SPDX-License-Identifier: MIT
// Package orchestrate: sentinel errors, functional options, and the
// ResultSet aggregate. Same error policy as the bruteforce package:
// sentinels only, errors.Is matching, option violations surfaced at Run.

package orchestrate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vigenere/cipher"
)

// Sentinel errors for orchestration runs.
var (
	// ErrNoAlphabets is returned when the alphabet collection is empty.
	ErrNoAlphabets = errors.New("orchestrate: no alphabets supplied")

	// ErrNoKeys is returned when the key collection is empty.
	ErrNoKeys = errors.New("orchestrate: no keys supplied")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("orchestrate: invalid option supplied")
)

// DefaultWorkers runs pairs sequentially; parallelism is opt-in.
const DefaultWorkers = 1

// Option configures a Run via functional arguments.
type Option func(*Options)

// Options holds the tunables of an orchestration run.
type Options struct {
	// Workers is the number of goroutines pairs are strided across.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults applied.
func DefaultOptions() Options {
	return Options{Workers: DefaultWorkers}
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

// ResultSet is the ordered outcome of one orchestration run: exactly one
// cipher.Result per (alphabet, key) pair, alphabet-major then key-minor,
// failed pairs recorded in place. Under cancellation the completed subset
// is kept, still in pair order, with Incomplete=true.
type ResultSet struct {
	// Ciphertext and Mode echo the run parameters.
	Ciphertext string
	Mode       cipher.Mode

	// Alphabets and Keys are the collection sizes; a complete run holds
	// Alphabets×Keys results.
	Alphabets int
	Keys      int

	// Results holds one record per pair, ordered by enumeration index.
	Results []cipher.Result

	// Incomplete is true when cancellation stopped the run early.
	Incomplete bool
}

// Succeeded counts pairs whose transform executed without a validation
// error.
func (s *ResultSet) Succeeded() int {
	n := 0
	for i := range s.Results {
		if s.Results[i].Success {
			n++
		}
	}
	return n
}

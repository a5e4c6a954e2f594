// SPDX-License-Identifier: MIT
// Package cipher: mode variant, sentinel errors, and the per-trial Result
// record shared with the bruteforce and orchestrate aggregators.

package cipher

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for engine construction and transforms.
var (
	// ErrEmptyText is returned when a transform receives empty input.
	// Callers may treat empty input as a no-op at a higher layer; the
	// engine itself always surfaces it.
	ErrEmptyText = errors.New("cipher: text is empty")

	// ErrUnknownMode is returned for a Mode value outside {Classic, Autokey}
	// or an unrecognized mode name in ParseMode.
	ErrUnknownMode = errors.New("cipher: unknown mode")
)

// Mode selects the key-stream derivation of an Engine. It is fixed per
// Engine instance and never changes mid-transform.
type Mode int

const (
	// Classic repeats the key cyclically over the member characters.
	Classic Mode = iota

	// Autokey extends the key with the plaintext (encrypt) or the
	// already-recovered plaintext (decrypt) once the key is exhausted.
	Autokey
)

// String returns the canonical lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Classic:
		return "classic"
	case Autokey:
		return "autokey"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a mode name (case-insensitive) to its Mode value.
// Returns ErrUnknownMode for anything but "classic" and "autokey".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic":
		return Classic, nil
	case "autokey":
		return Autokey, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Result records the outcome of exactly one transform trial. It is plain
// structured data: no formatting is applied, and failed trials carry their
// error description in place so batch runs can surface them alongside
// successes.
type Result struct {
	// Index is the trial's enumeration slot, assigned at dispatch time by
	// the aggregator that owns the result. Zero for single transforms.
	Index int

	// Alphabet, Key, and Mode echo the parameters that produced Output.
	Alphabet string
	Key      string
	Mode     Mode

	// Output is the transformed text; empty when the trial failed.
	Output string

	// Success reports whether the transform executed without a validation
	// error. It says nothing about linguistic plausibility.
	Success bool

	// Err holds the failure description when Success is false.
	Err string
}

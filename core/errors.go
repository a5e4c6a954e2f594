// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the core
// package. All constructors MUST return these sentinels and tests MUST check
// them via errors.Is. Constructors never panic on user input.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and to allow
// easy grepping across logs. Do not wrap these sentinels at definition site;
// attach context with fmt.Errorf("...: %w", ErrX) at the call site so that
// errors.Is keeps matching.

var (
	// ErrEmptyAlphabet is returned when an alphabet is constructed from an
	// empty symbol sequence.
	ErrEmptyAlphabet = errors.New("core: alphabet is empty")

	// ErrAlphabetTooShort is returned when an alphabet holds fewer than two
	// symbols; a single-symbol alphabet admits only the identity transform.
	ErrAlphabetTooShort = errors.New("core: alphabet needs at least two symbols")

	// ErrDuplicateSymbol is returned when the symbol sequence contains the
	// same symbol twice; the symbol→index mapping must be a bijection.
	ErrDuplicateSymbol = errors.New("core: duplicate symbol in alphabet")

	// ErrEmptyKey is returned when a key is constructed from an empty string.
	ErrEmptyKey = errors.New("core: key is empty")

	// ErrKeySymbol is returned when a key symbol does not belong to the
	// associated alphabet. The offending symbol is attached via %w wrapping.
	ErrKeySymbol = errors.New("core: key symbol not in alphabet")
)

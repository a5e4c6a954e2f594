// SPDX-License-Identifier: MIT
// Package builder: sentinel errors.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context via %w.
//   • Constructors never panic on user input.

package builder

import "errors"

// ErrNoWords indicates that a keyed-alphabet constructor received no
// words, or that none of the supplied words contained a single symbol
// admissible under the base alphabet.
var ErrNoWords = errors.New("builder: no usable words")

// ErrEmptySource indicates that a list parser read only whitespace (or
// nothing) from its reader.
var ErrEmptySource = errors.New("builder: source is empty")

// ErrBadLength indicates an invalid requested key length (< 1).
var ErrBadLength = errors.New("builder: invalid key length")

// ErrOptionViolation indicates that a WithX option constructor received a
// meaningless value (e.g. a zero-value base alphabet).
var ErrOptionViolation = errors.New("builder: invalid option value")

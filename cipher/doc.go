// Package cipher implements the Vigenère transform engine over a
// core.Alphabet and core.Key, in two modes:
//
//   - Classic — the key repeats cyclically. Character i of the effective
//     key stream is key[i mod len(key)].
//   - Autokey — the key stream is the initial key followed by the plaintext
//     itself (encryption) or by the already-recovered plaintext (decryption),
//     extended as far as needed.
//
// The mode set is closed by construction: a Mode value selects behavior
// inside one Engine rather than an open class hierarchy, because exactly
// these two variants exist.
//
// Transform contract (both modes, both directions):
//
//   - A character that is not a member of the alphabet is copied to the
//     output unchanged and does NOT advance the key cursor. Pass-through is
//     a defined behavior, not an error.
//   - A member character at alphabet index p with key-stream index k maps to
//     Symbol((p+k) mod N) on encryption and Symbol((p−k+N) mod N) on
//     decryption, where N is the alphabet size.
//   - Empty input is reported as ErrEmptyText, never silently accepted.
//
// Sequential dependency: autokey decryption is inherently left-to-right —
// the key-stream symbol at position i (for i ≥ key length) is the plaintext
// recovered at position i−len(key). The accumulator for that dependency is
// local to each Decrypt call, so one Engine value is safely shared across
// concurrent trials; parallelism belongs across trials, never inside one
// autokey decode.
//
// Case handling: the engine folds nothing. Callers normalize case before
// invoking the engine so that membership tests are case-consistent.
package cipher

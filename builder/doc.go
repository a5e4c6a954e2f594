// Package builder constructs the inputs of cipher runs: keyed alphabets
// derived from words, parsed word/key lists, and deterministic random
// keys.
//
// A keyed alphabet places the letters of one or more secret words first —
// deduplicated, order preserved — and fills the tail with the remaining
// symbols of a base alphabet:
//
//	KeyedAlphabet([]string{"KRYPTOS"})
//	  → "KRYPTOSABCDEFGHIJLMNQUVWXZ"
//
// List parsing accepts the loose file formats field operators actually
// produce: comma-, newline-, or space-separated entries (tried in that
// order of preference), trimmed, with the whole content treated as a
// single entry when no separator is present. ParseKeys additionally
// deduplicates while preserving first-seen order; ParseWords keeps
// duplicates because repeated words legitimately re-key an alphabet.
//
// Random keys follow the module's determinism discipline: the RNG is
// seeded explicitly, and seed 0 selects a fixed default stream so that
// zero-configured calls stay reproducible across runs and machines.
//
// All construction funnels through core's validating constructors, so a
// builder can only ever hand out well-formed Alphabet and Key values.
package builder

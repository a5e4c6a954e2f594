package builder

import (
	"unicode"

	"github.com/katalvlaran/vigenere/core"
)

// KeyedAlphabet builds one alphabet from the given words: each word's
// admissible symbols in order, deduplicated across all words, followed by
// the base alphabet's remaining symbols in base order.
//
// Symbol admission: a word rune is kept if it is a member of the base
// alphabet, or if its upper-case form is (so lower-case prose keys an
// upper-case base naturally). Anything else — digits against a letters
// base, punctuation, whitespace — is dropped.
//
// Errors:
//   - ErrNoWords when words is empty or no rune survives admission.
//   - ErrOptionViolation via invalid options.
//
// Complexity: O(Σlen(words) + base.Len()).
func KeyedAlphabet(words []string, opts ...Option) (core.Alphabet, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return core.Alphabet{}, cfg.err
	}
	if len(words) == 0 {
		return core.Alphabet{}, ErrNoWords
	}

	var (
		seen = make(map[rune]bool, cfg.base.Len())
		out  = make([]rune, 0, cfg.base.Len())
	)
	for _, word := range words {
		for _, r := range word {
			r, ok := admit(r, cfg.base)
			if !ok || seen[r] {
				continue
			}
			seen[r] = true
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return core.Alphabet{}, ErrNoWords
	}

	// Fill the tail with the unused remainder of the base alphabet.
	for _, r := range cfg.base.Runes() {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}

	return core.NewAlphabet(string(out))
}

// KeyedAlphabets builds one keyed alphabet per word, each against the
// same base. Words that contribute no admissible symbol fail the whole
// call with ErrNoWords: a silently skipped word would desynchronize the
// caller's word↔alphabet pairing.
func KeyedAlphabets(words []string, opts ...Option) ([]core.Alphabet, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	out := make([]core.Alphabet, len(words))
	for i, word := range words {
		a, err := KeyedAlphabet([]string{word}, opts...)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// admit maps a word rune onto the base alphabet: exact member first,
// upper-cased member second.
func admit(r rune, base core.Alphabet) (rune, bool) {
	if base.Contains(r) {
		return r, true
	}
	if u := unicode.ToUpper(r); base.Contains(u) {
		return u, true
	}
	return r, false
}

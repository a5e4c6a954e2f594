package core

import "fmt"

// Alphabet is an ordered, duplicate-free set of symbols with O(1)
// symbol↔index lookup. The zero value is not usable; construct with
// NewAlphabet. Alphabet is immutable and safe for concurrent use.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet validates symbols and builds the reverse mapping.
//
// Contracts:
//   - symbols must decode to at least two runes (ErrEmptyAlphabet for zero,
//     ErrAlphabetTooShort for one).
//   - every rune must be unique (ErrDuplicateSymbol, wrapped with the
//     offending rune).
//   - no normalization is applied: case sensitivity and symbol set are
//     exactly as given.
//
// Complexity: O(n) time and space over the rune count.
func NewAlphabet(symbols string) (Alphabet, error) {
	runes := []rune(symbols)
	switch len(runes) {
	case 0:
		return Alphabet{}, ErrEmptyAlphabet
	case 1:
		return Alphabet{}, ErrAlphabetTooShort
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return Alphabet{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		index[r] = i
	}

	return Alphabet{symbols: runes, index: index}, nil
}

// MustAlphabet is NewAlphabet that panics on error. Intended for package
// variables holding well-known alphabets; not for user input.
func MustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// standardEnglish backs StandardEnglish; built once, shared forever.
var standardEnglish = MustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// StandardEnglish returns the uppercase A–Z alphabet, the conventional
// default for Vigenère work.
func StandardEnglish() Alphabet { return standardEnglish }

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int { return len(a.symbols) }

// Index returns the position of r and whether r is a member.
// Non-membership is a pass-through decision for the cipher, not an error.
func (a Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether r is a member of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Symbol returns the symbol at i mod Len(). It is total over any integer
// index; negative indices reduce into range.
func (a Alphabet) Symbol(i int) rune {
	n := len(a.symbols)
	i %= n
	if i < 0 {
		i += n
	}
	return a.symbols[i]
}

// Runes returns a copy of the symbol sequence in order.
func (a Alphabet) Runes() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// String returns the symbol sequence as a string.
func (a Alphabet) String() string { return string(a.symbols) }

// Equal reports whether a and b hold the same symbols in the same order.
func (a Alphabet) Equal(b Alphabet) bool {
	if len(a.symbols) != len(b.symbols) {
		return false
	}
	for i, r := range a.symbols {
		if b.symbols[i] != r {
			return false
		}
	}
	return true
}

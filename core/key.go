package core

import "fmt"

// Key is a validated sequence of symbols drawn from one Alphabet.
// Construction resolves every symbol to its alphabet index once, so the
// cipher's hot loop never repeats the lookup. Key is immutable and safe
// for concurrent use.
type Key struct {
	value   string
	indices []int
	alpha   Alphabet
}

// NewKey validates value against a and precomputes symbol indices.
//
// Contracts:
//   - value must be non-empty (ErrEmptyKey).
//   - every rune of value must be a member of a (ErrKeySymbol, wrapped with
//     the offending rune and its position).
//
// Complexity: O(len(value)).
func NewKey(value string, a Alphabet) (Key, error) {
	if value == "" {
		return Key{}, ErrEmptyKey
	}

	runes := []rune(value)
	indices := make([]int, len(runes))
	for i, r := range runes {
		idx, ok := a.Index(r)
		if !ok {
			return Key{}, fmt.Errorf("%w: %q at position %d", ErrKeySymbol, r, i)
		}
		indices[i] = idx
	}

	return Key{value: value, indices: indices, alpha: a}, nil
}

// Len returns the number of symbols in the key.
func (k Key) Len() int { return len(k.indices) }

// Indices returns a copy of the key's alphabet indices in order.
func (k Key) Indices() []int {
	out := make([]int, len(k.indices))
	copy(out, k.indices)
	return out
}

// At returns the alphabet index of the key symbol at position i.
// Callers keep i in [0, Len()); out-of-range access is a programmer error.
func (k Key) At(i int) int { return k.indices[i] }

// Alphabet returns the alphabet the key was validated against.
func (k Key) Alphabet() Alphabet { return k.alpha }

// String returns the key's symbol sequence.
func (k Key) String() string { return k.value }

// Package core provides the two fundamental value types of the vigenere
// module: Alphabet and Key.
//
// An Alphabet is a validated, ordered, duplicate-free set of symbols with
// constant-time symbol↔index lookup. A Key is a validated sequence of
// symbols drawn from one Alphabet. Both are immutable after construction:
// every transform, search, or orchestration run shares them freely across
// goroutines without locking.
//
// Validation happens once, at the construction boundary:
//
//   - NewAlphabet rejects empty, single-symbol, and duplicate-containing
//     inputs (ErrEmptyAlphabet, ErrAlphabetTooShort, ErrDuplicateSymbol).
//   - NewKey rejects empty keys and keys containing symbols outside the
//     associated alphabet (ErrEmptyKey, ErrKeySymbol).
//
// Invalid input therefore never reaches transform logic.
//
// Case handling contract: core performs no case folding. Membership tests
// are exact-symbol matches; callers normalize case before construction.
//
// Lookup surface:
//
//	Index(r)  — position of r, with a membership flag   O(1)
//	Symbol(i) — symbol at i mod Len(), total over any i O(1)
//	Contains(r), Len(), Runes(), String()
//
// Symbol is deliberately total: shift arithmetic in the cipher package may
// produce any integer, and modular reduction here keeps that arithmetic
// branch-free (negative indices reduce into range as well).
package core

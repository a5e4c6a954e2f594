package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vigenere/core"
)

// TestKeyedAlphabet_Kryptos verifies the canonical keyed-alphabet
// construction: word letters first (deduplicated, order preserved),
// base remainder after.
func TestKeyedAlphabet_Kryptos(t *testing.T) {
	a, err := KeyedAlphabet([]string{"KRYPTOS"})
	require.NoError(t, err)
	assert.Equal(t, "KRYPTOSABCDEFGHIJLMNQUVWXZ", a.String())
	assert.Equal(t, 26, a.Len())
}

// TestKeyedAlphabet_DedupeAcrossWords checks that repeated symbols,
// within one word or across words, appear only once.
func TestKeyedAlphabet_DedupeAcrossWords(t *testing.T) {
	a, err := KeyedAlphabet([]string{"BANANA", "CAB"})
	require.NoError(t, err)
	// B,A,N from BANANA; C new from CAB; then the remainder.
	assert.Equal(t, "BANCDEFGHIJKLMOPQRSTUVWXYZ", a.String())
}

// TestKeyedAlphabet_LowercaseAdmission: lower-case word runes map onto an
// upper-case base via case folding at admission time.
func TestKeyedAlphabet_LowercaseAdmission(t *testing.T) {
	a, err := KeyedAlphabet([]string{"kryptos"})
	require.NoError(t, err)
	assert.Equal(t, "KRYPTOSABCDEFGHIJLMNQUVWXZ", a.String())
}

// TestKeyedAlphabet_DropsForeignRunes: digits, punctuation and spaces
// that have no place in the base alphabet are silently dropped.
func TestKeyedAlphabet_DropsForeignRunes(t *testing.T) {
	a, err := KeyedAlphabet([]string{"K-9 RYPTOS!"})
	require.NoError(t, err)
	assert.Equal(t, "KRYPTOSABCDEFGHIJLMNQUVWXZ", a.String())
}

// TestKeyedAlphabet_CustomBase keys a non-default base alphabet and
// confirms the tail comes from that base, not from A–Z.
func TestKeyedAlphabet_CustomBase(t *testing.T) {
	base := core.MustAlphabet("ABCDEF")
	a, err := KeyedAlphabet([]string{"FAD"}, WithBaseAlphabet(base))
	require.NoError(t, err)
	assert.Equal(t, "FADBCE", a.String())
}

// TestKeyedAlphabet_Errors covers the rejection paths.
func TestKeyedAlphabet_Errors(t *testing.T) {
	t.Run("no words", func(t *testing.T) {
		_, err := KeyedAlphabet(nil)
		assert.ErrorIs(t, err, ErrNoWords)
	})
	t.Run("no admissible symbol", func(t *testing.T) {
		_, err := KeyedAlphabet([]string{"1234 !?"})
		assert.ErrorIs(t, err, ErrNoWords)
	})
	t.Run("zero-value base", func(t *testing.T) {
		_, err := KeyedAlphabet([]string{"KRYPTOS"}, WithBaseAlphabet(core.Alphabet{}))
		assert.ErrorIs(t, err, ErrOptionViolation)
	})
}

// TestKeyedAlphabets builds one alphabet per word and fails the whole
// call on the first unusable word.
func TestKeyedAlphabets(t *testing.T) {
	alphas, err := KeyedAlphabets([]string{"KRYPTOS", "ZEBRA"})
	require.NoError(t, err)
	require.Len(t, alphas, 2)
	assert.Equal(t, "KRYPTOSABCDEFGHIJLMNQUVWXZ", alphas[0].String())
	assert.Equal(t, "ZEBRACDFGHIJKLMNOPQSTUVWXY", alphas[1].String())

	_, err = KeyedAlphabets([]string{"KRYPTOS", "???"})
	assert.ErrorIs(t, err, ErrNoWords)

	_, err = KeyedAlphabets(nil)
	assert.ErrorIs(t, err, ErrNoWords)
}

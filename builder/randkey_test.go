package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vigenere/core"
)

// TestRandomKey_Deterministic: equal alphabet, length and seed produce
// the identical key; a different seed produces a different one.
func TestRandomKey_Deterministic(t *testing.T) {
	alpha := core.StandardEnglish()

	k1, err := RandomKey(alpha, 16, WithSeed(42))
	require.NoError(t, err)
	k2, err := RandomKey(alpha, 16, WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, k1.String(), k2.String())

	k3, err := RandomKey(alpha, 16, WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, k1.String(), k3.String())
}

// TestRandomKey_ZeroSeedIsFixed: seed 0 selects the default stream, so
// zero-configured calls are still reproducible.
func TestRandomKey_ZeroSeedIsFixed(t *testing.T) {
	alpha := core.StandardEnglish()

	k1, err := RandomKey(alpha, 8)
	require.NoError(t, err)
	k2, err := RandomKey(alpha, 8, WithSeed(0))
	require.NoError(t, err)
	k3, err := RandomKey(alpha, 8, WithSeed(defaultRNGSeed))
	require.NoError(t, err)

	assert.Equal(t, k1.String(), k2.String())
	assert.Equal(t, k1.String(), k3.String())
}

// TestRandomKey_Validity: every generated symbol is a member of the
// source alphabet and the key has the requested length.
func TestRandomKey_Validity(t *testing.T) {
	alpha := core.MustAlphabet("ABC")
	k, err := RandomKey(alpha, 100, WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, 100, k.Len())
	for _, r := range k.String() {
		assert.True(t, alpha.Contains(r), "symbol %q outside alphabet", r)
	}
	assert.True(t, alpha.Equal(k.Alphabet()))
}

// TestRandomKey_Errors covers the rejection paths.
func TestRandomKey_Errors(t *testing.T) {
	t.Run("zero length", func(t *testing.T) {
		_, err := RandomKey(core.StandardEnglish(), 0)
		assert.ErrorIs(t, err, ErrBadLength)
	})
	t.Run("negative length", func(t *testing.T) {
		_, err := RandomKey(core.StandardEnglish(), -3)
		assert.ErrorIs(t, err, ErrBadLength)
	})
	t.Run("zero-value alphabet", func(t *testing.T) {
		_, err := RandomKey(core.Alphabet{}, 4)
		assert.ErrorIs(t, err, core.ErrEmptyAlphabet)
	})
}

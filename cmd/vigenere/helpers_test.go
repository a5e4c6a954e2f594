package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveText covers the text/file input selection rules.
func TestResolveText(t *testing.T) {
	t.Run("inline text", func(t *testing.T) {
		got, err := resolveText("HELLO", "")
		require.NoError(t, err)
		assert.Equal(t, "HELLO", got)
	})

	t.Run("input file with trailing newline", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "in.txt")
		require.NoError(t, os.WriteFile(p, []byte("HELLO WORLD\n"), 0o644))

		got, err := resolveText("", p)
		require.NoError(t, err)
		assert.Equal(t, "HELLO WORLD", got)
	})

	t.Run("both sources", func(t *testing.T) {
		_, err := resolveText("HELLO", "in.txt")
		assert.ErrorContains(t, err, "mutually exclusive")
	})

	t.Run("no source", func(t *testing.T) {
		_, err := resolveText("", "")
		assert.ErrorContains(t, err, "no input")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := resolveText("", filepath.Join(t.TempDir(), "absent.txt"))
		assert.ErrorContains(t, err, "reading input")
	})
}

// TestResolveAlphabet: explicit flag wins, config default otherwise.
func TestResolveAlphabet(t *testing.T) {
	viper.Set("alphabet", "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	t.Cleanup(func() { viper.Reset() })

	a, err := resolveAlphabet("")
	require.NoError(t, err)
	assert.Equal(t, 26, a.Len())

	a, err = resolveAlphabet("ABC")
	require.NoError(t, err)
	assert.Equal(t, "ABC", a.String())

	_, err = resolveAlphabet("AA")
	assert.Error(t, err)
}

// TestKeyspaceLabel: plain counts stay plain, huge counts go scientific.
func TestKeyspaceLabel(t *testing.T) {
	assert.Equal(t, "17576", keyspaceLabel(26, 3))
	assert.Contains(t, keyspaceLabel(26, 10), "e+")
}

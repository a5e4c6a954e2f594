package cipher_test

import (
	"testing"

	"github.com/katalvlaran/vigenere/cipher"
	"github.com/katalvlaran/vigenere/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEngine builds an Engine over A–Z for the given key and mode,
// failing the test on construction errors.
func newEngine(t *testing.T, key string, mode cipher.Mode) *cipher.Engine {
	t.Helper()
	k, err := core.NewKey(key, core.StandardEnglish())
	require.NoError(t, err, "key %q must be valid under A–Z", key)
	eng, err := cipher.New(k, mode)
	require.NoError(t, err)
	return eng
}

// TestNew_ZeroKey verifies that an unconstructed key is rejected.
func TestNew_ZeroKey(t *testing.T) {
	_, err := cipher.New(core.Key{}, cipher.Classic)
	assert.ErrorIs(t, err, core.ErrEmptyKey)
}

// TestNew_UnknownMode verifies that a mode outside the closed variant set
// is rejected with ErrUnknownMode.
func TestNew_UnknownMode(t *testing.T) {
	k, err := core.NewKey("KEY", core.StandardEnglish())
	require.NoError(t, err)

	_, err = cipher.New(k, cipher.Mode(42))
	assert.ErrorIs(t, err, cipher.ErrUnknownMode)
}

// TestEngine_EmptyText verifies that empty input is reported, not silently
// treated as success, in both directions and modes.
func TestEngine_EmptyText(t *testing.T) {
	for _, mode := range []cipher.Mode{cipher.Classic, cipher.Autokey} {
		eng := newEngine(t, "KEY", mode)

		_, err := eng.Encrypt("")
		assert.ErrorIs(t, err, cipher.ErrEmptyText, "%s encrypt", mode)
		_, err = eng.Decrypt("")
		assert.ErrorIs(t, err, cipher.ErrEmptyText, "%s decrypt", mode)
	}
}

// TestClassic_KnownVector checks the textbook pair HELLO/KEY → RIJVS.
func TestClassic_KnownVector(t *testing.T) {
	eng := newEngine(t, "KEY", cipher.Classic)

	ct, err := eng.Encrypt("HELLO")
	require.NoError(t, err)
	assert.Equal(t, "RIJVS", ct)

	pt, err := eng.Decrypt("RIJVS")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", pt)
}

// TestClassic_PassThroughVector checks the SECRET vector with a space:
// the space is copied unchanged and does not consume a key position, so
// 'W' continues with key symbol 'T'.
func TestClassic_PassThroughVector(t *testing.T) {
	eng := newEngine(t, "SECRET", cipher.Classic)

	ct, err := eng.Encrypt("HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, "ZINCS PGVNU", ct)

	pt, err := eng.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", pt)
}

// TestClassic_PassThroughKeepsAlignment verifies that a non-member between
// two members does not advance the key cursor: with alphabet ABCD and key
// BC, "A-B" must become "B-D" (B would become C if '-' consumed a slot).
func TestClassic_PassThroughKeepsAlignment(t *testing.T) {
	a, err := core.NewAlphabet("ABCD")
	require.NoError(t, err)
	k, err := core.NewKey("BC", a)
	require.NoError(t, err)
	eng, err := cipher.New(k, cipher.Classic)
	require.NoError(t, err)

	ct, err := eng.Encrypt("A-B")
	require.NoError(t, err)
	assert.Equal(t, "B-D", ct)
}

// TestAutokey_KnownVector checks autokey HELLO/KEY: the stream is K,E,Y
// followed by the plaintext H,E — RIJSS.
func TestAutokey_KnownVector(t *testing.T) {
	eng := newEngine(t, "KEY", cipher.Autokey)

	ct, err := eng.Encrypt("HELLO")
	require.NoError(t, err)
	assert.Equal(t, "RIJSS", ct)

	pt, err := eng.Decrypt("RIJSS")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", pt)
}

// TestAutokey_PassThroughVector checks the autokey SECRET vector with a
// space: members only feed the stream, and the space passes through.
func TestAutokey_PassThroughVector(t *testing.T) {
	eng := newEngine(t, "SECRET", cipher.Autokey)

	ct, err := eng.Encrypt("HELLO WORLD")
	require.NoError(t, err)
	assert.Equal(t, "ZINCS PVVWO", ct)

	pt, err := eng.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", pt)
}

// TestClassicAutokeyDiverge verifies that the two modes produce different
// ciphertexts as soon as the text has member characters beyond the key
// length.
func TestClassicAutokeyDiverge(t *testing.T) {
	classic := newEngine(t, "KEY", cipher.Classic)
	autokey := newEngine(t, "KEY", cipher.Autokey)

	text := "ATTACKATDAWN"
	c1, err := classic.Encrypt(text)
	require.NoError(t, err)
	c2, err := autokey.Encrypt(text)
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2, "len(text) > len(key) must diverge")
	assert.Equal(t, c1[:3], c2[:3], "the first len(key) members agree")
}

// TestRoundTrip exercises decrypt(encrypt(T)) == T across alphabets, keys,
// modes, and pass-through characters.
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		alphabet string
		key      string
		text     string
	}{
		{"latin", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "SECRET", "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"},
		{"digits", "0123456789", "314", "8675309, 555-0199"},
		{"mixed_case", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", "GoLang", "Hello World"},
		{"symbols", "ABCDEFGHIJKLMNOPQRSTUVWXYZ!@#$%", "A!B", "WOW! SUCH #CIPHER%"},
		{"key_longer_than_text", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "VERYLONGKEY", "HI"},
	}

	for _, tc := range cases {
		for _, mode := range []cipher.Mode{cipher.Classic, cipher.Autokey} {
			t.Run(tc.name+"/"+mode.String(), func(t *testing.T) {
				a, err := core.NewAlphabet(tc.alphabet)
				require.NoError(t, err)
				k, err := core.NewKey(tc.key, a)
				require.NoError(t, err)
				eng, err := cipher.New(k, mode)
				require.NoError(t, err)

				ct, err := eng.Encrypt(tc.text)
				require.NoError(t, err)
				pt, err := eng.Decrypt(ct)
				require.NoError(t, err)
				assert.Equal(t, tc.text, pt)
			})
		}
	}
}

// TestClassic_EdgeShifts checks the degenerate single-symbol boundaries of
// the shift arithmetic.
func TestClassic_EdgeShifts(t *testing.T) {
	cases := []struct{ text, key, want string }{
		{"A", "A", "A"},
		{"A", "B", "B"},
		{"B", "A", "B"},
		{"Z", "A", "Z"},
		{"A", "Z", "Z"},
		{"Z", "B", "A"}, // wrap-around
	}
	for _, tc := range cases {
		eng := newEngine(t, tc.key, cipher.Classic)
		ct, err := eng.Encrypt(tc.text)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ct, "%s under %s", tc.text, tc.key)
	}
}

// TestEngine_ConcurrentReuse verifies that one Engine value yields
// identical results when shared across goroutines, including the
// sequential autokey decrypt path.
func TestEngine_ConcurrentReuse(t *testing.T) {
	eng := newEngine(t, "SECRET", cipher.Autokey)

	ct, err := eng.Encrypt("HELLO WORLD")
	require.NoError(t, err)

	const goroutines = 8
	out := make(chan string, goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			pt, decErr := eng.Decrypt(ct)
			if decErr != nil {
				out <- "error: " + decErr.Error()
				return
			}
			out <- pt
		}()
	}
	for i := 0; i < goroutines; i++ {
		assert.Equal(t, "HELLO WORLD", <-out)
	}
}

// TestParseMode verifies name→Mode mapping and the unknown-name error.
func TestParseMode(t *testing.T) {
	m, err := cipher.ParseMode("classic")
	require.NoError(t, err)
	assert.Equal(t, cipher.Classic, m)

	m, err = cipher.ParseMode(" Autokey ")
	require.NoError(t, err)
	assert.Equal(t, cipher.Autokey, m)

	_, err = cipher.ParseMode("caesar")
	assert.ErrorIs(t, err, cipher.ErrUnknownMode)
}

// TestMode_String verifies canonical names, including the fallback for
// out-of-range values.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "classic", cipher.Classic.String())
	assert.Equal(t, "autokey", cipher.Autokey.String())
	assert.Equal(t, "mode(7)", cipher.Mode(7).String())
}

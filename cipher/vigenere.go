package cipher

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vigenere/core"
)

// Engine performs Vigenère transforms under one (alphabet, key, mode)
// triple. The alphabet is taken from the key, which makes an alphabet/key
// mismatch impossible by construction. Engine holds no mutable state:
// every transform keeps its cursor and autokey accumulator on the stack,
// so a single Engine is safe for concurrent use.
type Engine struct {
	alpha core.Alphabet
	key   core.Key
	mode  Mode
}

// New builds an Engine from a validated key and a mode.
//
// Errors:
//   - core.ErrEmptyKey for a zero-value (unconstructed) key.
//   - ErrUnknownMode for a mode outside {Classic, Autokey}.
//
// Complexity: O(1); all per-symbol validation already happened in
// core.NewKey.
func New(k core.Key, mode Mode) (*Engine, error) {
	if k.Len() == 0 {
		return nil, core.ErrEmptyKey
	}
	if mode != Classic && mode != Autokey {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	return &Engine{alpha: k.Alphabet(), key: k, mode: mode}, nil
}

// Alphabet returns the engine's alphabet.
func (e *Engine) Alphabet() core.Alphabet { return e.alpha }

// Key returns the engine's key.
func (e *Engine) Key() core.Key { return e.key }

// Mode returns the engine's mode.
func (e *Engine) Mode() Mode { return e.mode }

// Encrypt transforms plaintext into ciphertext. Non-member characters pass
// through unchanged without consuming key-stream positions.
//
// Errors: ErrEmptyText for empty input.
// Complexity: O(len(text)) time; O(len(text)) space for the output (plus
// the accumulated key stream in Autokey mode).
func (e *Engine) Encrypt(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	if e.mode == Autokey {
		return e.autokey(text, true), nil
	}
	return e.classic(text, true), nil
}

// Decrypt transforms ciphertext back into plaintext. In Autokey mode this
// is an inherently sequential left-to-right computation: the key stream
// beyond the initial key is the plaintext recovered so far.
//
// Errors: ErrEmptyText for empty input.
// Complexity: O(len(text)).
func (e *Engine) Decrypt(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	if e.mode == Autokey {
		return e.autokey(text, false), nil
	}
	return e.classic(text, false), nil
}

// classic runs the repeating-key transform in either direction. The key
// cursor advances cyclically and only on member characters, so pass-through
// characters never shift the key alignment.
func (e *Engine) classic(text string, encrypt bool) string {
	var (
		b      strings.Builder
		n      = e.alpha.Len()
		kl     = e.key.Len()
		cursor int
	)
	b.Grow(len(text))

	for _, r := range text {
		p, ok := e.alpha.Index(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		k := e.key.At(cursor)
		cursor = (cursor + 1) % kl

		if encrypt {
			b.WriteRune(e.alpha.Symbol((p + k) % n))
		} else {
			b.WriteRune(e.alpha.Symbol((p - k + n) % n))
		}
	}

	return b.String()
}

// autokey runs the self-extending-key transform in either direction.
//
// The stream slice starts as the key's indices and grows by one entry per
// member character: the plaintext index when encrypting, the recovered
// plaintext index when decrypting. Position i of the stream is therefore
// key[i] for i < len(key) and plaintext[i−len(key)] afterwards — exactly
// the autokey contract. The accumulator lives on this call's stack, which
// keeps the Engine reusable across concurrent trials.
func (e *Engine) autokey(text string, encrypt bool) string {
	var (
		b      strings.Builder
		n      = e.alpha.Len()
		stream = e.key.Indices()
		pos    int
	)
	b.Grow(len(text))

	for _, r := range text {
		c, ok := e.alpha.Index(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		k := stream[pos]
		pos++

		if encrypt {
			// Plaintext feeds the stream; ciphertext goes to output.
			stream = append(stream, c)
			b.WriteRune(e.alpha.Symbol((c + k) % n))
		} else {
			// Recovered plaintext feeds the stream and the output.
			p := (c - k + n) % n
			stream = append(stream, p)
			b.WriteRune(e.alpha.Symbol(p))
		}
	}

	return b.String()
}

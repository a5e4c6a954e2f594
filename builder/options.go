// SPDX-License-Identifier: MIT
// Package builder: functional configuration.
//
// Options resolve into an immutable builderConfig (no global state).
// Invalid option values are recorded in the config and surfaced as
// ErrOptionViolation by the constructor that consumes them, keeping the
// no-panic contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vigenere/core"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Option configures builder constructors via functional arguments.
type Option func(*builderConfig)

// builderConfig is the resolved, immutable configuration of one call.
type builderConfig struct {
	base core.Alphabet
	seed int64

	// internal error recorded during option parsing
	err error
}

// newBuilderConfig resolves opts over the defaults: base alphabet A–Z,
// seed 0 (⇒ the fixed default stream).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{base: core.StandardEnglish()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBaseAlphabet sets the base alphabet whose leftover symbols fill the
// tail of keyed alphabets and whose membership filters word symbols.
// A zero-value alphabet is rejected as ErrOptionViolation.
func WithBaseAlphabet(a core.Alphabet) Option {
	return func(cfg *builderConfig) {
		if a.Len() == 0 {
			cfg.err = fmt.Errorf("%w: base alphabet is zero-valued", ErrOptionViolation)
			return
		}
		cfg.base = a
	}
}

// WithSeed fixes the RNG stream for stochastic constructors.
// Policy: seed==0 selects the fixed default seed, any other value is used
// verbatim — same inputs and seed ⇒ identical output on every platform.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) {
		cfg.seed = seed
	}
}

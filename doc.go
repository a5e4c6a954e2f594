// Package vigenere is a polyalphabetic substitution toolkit — a cipher
// engine for classic and autokey Vigenère over arbitrary symbol alphabets,
// plus the cryptanalysis workflows built on top of it.
//
// 🚀 What is vigenere?
//
//	A deterministic, well-tested library that brings together:
//		• Core primitives: validated Alphabet & Key value types with O(1) lookup
//		• Cipher engine: classic (repeating key) and autokey transforms
//		• Brute force: lazy, index-addressable enumeration of whole key spaces
//		• Orchestration: alphabet × key cross-product runs with per-pair
//		  failure isolation
//		• Builders: keyed alphabets and key lists from word lists
//		• Formatters: text / JSON / CSV / YAML reports over result sets
//
// ✨ Why choose vigenere?
//
//   - Deterministic everywhere – enumeration orders are documented, stable
//     across machines, and preserved under parallel execution
//   - Strict sentinels – every failure mode is an errors.Is-checkable value
//   - Immutable primitives – one Engine value is safe across concurrent trials
//   - Honest results – batch runs record per-trial failures in place instead
//     of aborting, and cancellation returns the partial set, marked incomplete
//
// Under the hood, everything is organized as flat subpackages:
//
//	core/        — Alphabet & Key value types and their validation
//	cipher/      — the Vigenère Engine: Classic and Autokey modes
//	bruteforce/  — exhaustive key search over a lazy base-N key space
//	orchestrate/ — cross-product evaluation of many alphabets against many keys
//	builder/     — keyed-alphabet and key-list construction from word lists
//	format/      — report rendering (text, JSON, CSV, YAML) and file output
//	cmd/vigenere — the command-line front end
//
// Quick example:
//
//	a, _ := core.NewAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
//	k, _ := core.NewKey("SECRET", a)
//	eng, _ := cipher.New(k, cipher.Classic)
//	ct, _ := eng.Encrypt("HELLO WORLD") // "ZINCS PGVNU"
//
// The library performs no statistical cryptanalysis: a "successful" trial is
// one that executed without a validation error; plausibility scoring belongs
// to the caller.
//
//	go get github.com/katalvlaran/vigenere
package vigenere

package bruteforce

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/vigenere/cipher"
	"github.com/katalvlaran/vigenere/core"
)

// Run decrypts ciphertext under every key of length keyLength over a,
// in the given mode, and returns one result per candidate in enumeration
// order.
//
// Contracts:
//   - ciphertext must be non-empty (cipher.ErrEmptyText).
//   - mode must be Classic or Autokey (cipher.ErrUnknownMode).
//   - the candidate count alphabet_size^keyLength must not exceed the
//     ceiling (ErrSpaceExceeded) — checked before any enumeration.
//   - invalid options surface as ErrOptionViolation.
//
// Cancellation: ctx is checked between trials, never mid-trial (a single
// trial is cheap). On cancellation the partial set is returned with
// Incomplete=true — completed results kept in enumeration order — along
// with ctx's error.
//
// Complexity: O(alphabet_size^keyLength × len(ciphertext)) time;
// O(alphabet_size^keyLength) space for the result slice only.
func Run(ctx context.Context, ciphertext string, a core.Alphabet, keyLength int, mode cipher.Mode, opts ...Option) (*ResultSet, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if ciphertext == "" {
		return nil, cipher.ErrEmptyText
	}
	if mode != cipher.Classic && mode != cipher.Autokey {
		return nil, fmt.Errorf("%w: %d", cipher.ErrUnknownMode, int(mode))
	}

	ks, err := NewKeyspace(a, keyLength)
	if err != nil {
		return nil, err
	}
	if ks.Overflows() || ks.Total() > o.MaxCandidates {
		return nil, fmt.Errorf("%w: %d^%d candidates over ceiling %d",
			ErrSpaceExceeded, a.Len(), keyLength, o.MaxCandidates)
	}

	var (
		total   = int(ks.Total())
		results = make([]cipher.Result, total) // slot-assigned by index
		done    = make([]bool, total)          // each slot owned by one worker
		workers = o.Workers
	)
	if workers > total {
		workers = total
	}

	// Stride the index range across the pool: worker w owns indices
	// w, w+workers, w+2·workers, … Every slot has exactly one writer, so
	// the only synchronization needed is the final Wait.
	var (
		cancelled atomic.Bool
		wg        sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < total; i += workers {
				select {
				case <-ctx.Done():
					cancelled.Store(true)
					return
				default:
				}
				key, kerr := ks.Key(uint64(i))
				if kerr != nil {
					// Unreachable for i < total; recorded for honesty.
					results[i] = cipher.Result{Index: i, Alphabet: a.String(), Mode: mode, Err: kerr.Error()}
					done[i] = true
					continue
				}
				results[i] = trial(i, ciphertext, a, key, mode)
				done[i] = true
			}
		}(w)
	}
	wg.Wait()

	set := &ResultSet{
		Ciphertext: ciphertext,
		Alphabet:   a.String(),
		KeyLength:  keyLength,
		Mode:       mode,
		Results:    results,
	}

	if cancelled.Load() {
		// Keep what finished, in enumeration order; drop empty slots.
		kept := make([]cipher.Result, 0, total)
		for i := range results {
			if done[i] {
				kept = append(kept, results[i])
			}
		}
		set.Results = kept
		set.Incomplete = true
		return set, ctx.Err()
	}

	return set, nil
}

// trial decrypts ciphertext under one candidate key and folds any failure
// into the record instead of propagating it, per batch error policy.
func trial(index int, ciphertext string, a core.Alphabet, key string, mode cipher.Mode) cipher.Result {
	res := cipher.Result{
		Index:    index,
		Alphabet: a.String(),
		Key:      key,
		Mode:     mode,
	}

	k, err := core.NewKey(key, a)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	eng, err := cipher.New(k, mode)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	out, err := eng.Decrypt(ciphertext)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	res.Output = out
	res.Success = true
	return res
}

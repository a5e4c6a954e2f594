package orchestrate

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/vigenere/cipher"
	"github.com/katalvlaran/vigenere/core"
)

// Run decrypts ciphertext under every (alphabet, key) pair, in the given
// mode, and returns one result per pair in alphabet-major, key-minor
// order.
//
// Contracts:
//   - ciphertext must be non-empty (cipher.ErrEmptyText).
//   - mode must be Classic or Autokey (cipher.ErrUnknownMode).
//   - both collections must be non-empty (ErrNoAlphabets, ErrNoKeys).
//
// Per-pair key validation failures are folded into that pair's record;
// the run always yields len(alphabets)×len(keys) results unless
// cancelled.
//
// Cancellation: ctx is checked between pairs. On cancellation the
// completed subset is returned in pair order with Incomplete=true, along
// with ctx's error.
//
// Complexity: O(m×n×len(ciphertext)) time, O(m×n) space for results.
func Run(ctx context.Context, ciphertext string, alphabets []core.Alphabet, keys []string, mode cipher.Mode, opts ...Option) (*ResultSet, error) {
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
	if len(alphabets) == 0 {
		return nil, ErrNoAlphabets
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	var (
		total   = len(alphabets) * len(keys)
		results = make([]cipher.Result, total) // slot-assigned by pair index
		done    = make([]bool, total)
		workers = o.Workers
	)
	if workers > total {
		workers = total
	}

	// Pair index i·len(keys)+j decomposes back into (alphabet i, key j);
	// striding it across the pool keeps one writer per slot.
	var (
		cancelled atomic.Bool
		wg        sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			for idx := start; idx < total; idx += workers {
				select {
				case <-ctx.Done():
					cancelled.Store(true)
					return
				default:
				}
				ai, ki := idx/len(keys), idx%len(keys)
				results[idx] = pair(idx, ciphertext, alphabets[ai], keys[ki], mode)
				done[idx] = true
			}
		}(w)
	}
	wg.Wait()

	set := &ResultSet{
		Ciphertext: ciphertext,
		Mode:       mode,
		Alphabets:  len(alphabets),
		Keys:       len(keys),
		Results:    results,
	}

	if cancelled.Load() {
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

// pair validates key against a and decrypts under the pair, folding any
// failure into the record. Validation failure here is the normal path for
// mismatched (alphabet, key) combinations, not an exception.
func pair(index int, ciphertext string, a core.Alphabet, key string, mode cipher.Mode) cipher.Result {
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

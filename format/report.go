package format

import (
	"github.com/katalvlaran/vigenere/bruteforce"
	"github.com/katalvlaran/vigenere/cipher"
	"github.com/katalvlaran/vigenere/orchestrate"
)

// FromBruteForce flattens a brute-force result set into a Report.
// Entry order matches the set's enumeration order.
func FromBruteForce(set *bruteforce.ResultSet) (*Report, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	return &Report{
		Kind:       KindBruteForce,
		Ciphertext: set.Ciphertext,
		Mode:       set.Mode.String(),
		Total:      len(set.Results),
		Succeeded:  set.Succeeded(),
		Incomplete: set.Incomplete,
		Entries:    entriesOf(set.Results),
	}, nil
}

// FromOrchestration flattens an orchestration result set into a Report.
func FromOrchestration(set *orchestrate.ResultSet) (*Report, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	return &Report{
		Kind:       KindOrchestration,
		Ciphertext: set.Ciphertext,
		Mode:       set.Mode.String(),
		Total:      len(set.Results),
		Succeeded:  set.Succeeded(),
		Incomplete: set.Incomplete,
		Entries:    entriesOf(set.Results),
	}, nil
}

// entriesOf converts trial records into serialization entries 1:1.
func entriesOf(results []cipher.Result) []Entry {
	out := make([]Entry, len(results))
	for i, r := range results {
		out[i] = Entry{
			Index:    r.Index,
			Alphabet: r.Alphabet,
			Key:      r.Key,
			Mode:     r.Mode.String(),
			Success:  r.Success,
			Output:   r.Output,
			Error:    r.Err,
		}
	}
	return out
}

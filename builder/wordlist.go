package builder

import (
	"fmt"
	"io"
	"strings"
)

// listSeparators, in order of preference: a comma-separated file wins
// over line- or space-splitting, and newlines win over spaces so that
// multi-word phrases survive one-entry-per-line files.
var listSeparators = []string{",", "\n", " "}

// ParseWords reads a word/phrase list: entries split on the first
// separator present (comma, newline, space — in that order), trimmed,
// empties dropped. Content without any separator is one single entry.
// Duplicates are preserved; a repeated word legitimately re-keys an
// alphabet.
//
// Errors: ErrEmptySource for blank input; read failures are wrapped.
func ParseWords(r io.Reader) ([]string, error) {
	return parseList(r, false)
}

// ParseKeys reads a key list with the same splitting rules as ParseWords,
// additionally deduplicating while preserving first-seen order — trying
// the same candidate key twice is pure waste.
func ParseKeys(r io.Reader) ([]string, error) {
	return parseList(r, true)
}

// parseList implements the shared splitting policy.
func parseList(r io.Reader, dedupe bool) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("builder: reading list: %w", err)
	}

	content := strings.TrimSpace(string(raw))
	if content == "" {
		return nil, ErrEmptySource
	}

	for _, sep := range listSeparators {
		if !strings.Contains(content, sep) {
			continue
		}
		entries := splitClean(content, sep)
		if dedupe {
			entries = uniqueStable(entries)
		}
		if len(entries) > 0 {
			return entries, nil
		}
	}

	// No separator at all: the whole content is a single entry.
	return []string{content}, nil
}

// splitClean splits on sep, trims each piece, and drops empties.
func splitClean(content, sep string) []string {
	parts := strings.Split(content, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// uniqueStable removes duplicates, keeping the first occurrence of each.
func uniqueStable(entries []string) []string {
	seen := make(map[string]bool, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

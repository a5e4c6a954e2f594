package format

import (
	"strings"
	"unicode"
)

// Group reformats s into space-separated blocks of size runes, the
// traditional cipher transmission layout. Existing whitespace is
// stripped first, so grouping is idempotent and independent of the
// input's spacing. The final block may be shorter.
//
//	Group("RIJVS UYVJN", 5) → "RIJVS UYVJN"
//	Group("RIJVSUYVJN", 4)  → "RIJV SUYV JN"
//
// Returns ErrBadGroupSize for size < 1.
func Group(s string, size int) (string, error) {
	if size < 1 {
		return "", ErrBadGroupSize
	}

	var (
		b = strings.Builder{}
		n = 0
	)
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if n > 0 && n%size == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		n++
	}
	return b.String(), nil
}

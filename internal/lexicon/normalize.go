// File: internal/lexicon/normalize.go
package lexicon

import (
	"strings"
	"unicode"
)

// Normalize lowercases the input, replaces every rune outside Unicode
// letters/digits/whitespace with a space and trims the result. It is pure and
// total: empty input yields the empty string, and normalizing an already
// normalized string is a no-op.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

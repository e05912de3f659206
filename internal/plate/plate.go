package plate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLength is the longest normalized plate accepted at write boundaries.
const MaxLength = 16

// Normalize returns the canonical form of a license plate: uppercase with
// every whitespace rune removed. It is total and idempotent, so stored and
// queried plates compare by plain string equality.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(raw) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Valid reports whether an already normalized plate can be stored.
func Valid(normalized string) bool {
	n := utf8.RuneCountInString(normalized)
	return n > 0 && n <= MaxLength
}

package util

import (
	"strings"
	"unicode"
)

// Slugify lowercases s and joins its words with "-". Letters, digits and
// hyphens are kept; whitespace separates words; anything else is dropped.
//
// "  hi, there  " -> "hi-there"
func Slugify(s string) string {
	var words []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for _, r := range strings.TrimSpace(strings.ToLower(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-':
			cur.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		}
	}
	flush()

	return strings.Join(words, "-")
}

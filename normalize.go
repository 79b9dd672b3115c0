package skintrack

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented letters and removes their combining marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize reduces a display name to the comparable key used everywhere two
// names must be matched: lowercase, accents stripped, apostrophes, backticks,
// periods, hyphens and whitespace removed.
//
// "Cho'Gath", "Chogath" and "  cho  gath " all normalize to "chogath".
// Normalize never fails and is idempotent.
func Normalize(s string) string {
	s, _, _ = transform.String(stripMarks, strings.ToLower(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\'' || r == '`' || r == '.' || r == '-':
			return -1
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, s)
}

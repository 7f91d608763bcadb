package textutil

import (
	"strings"
	"unicode"
)

// ContainsAny reports whether any of `needles` is a substring of `text`,
// the comparison is case-insensitive.
func ContainsAny(text string, needles []string) bool {
	text = strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(text, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// TitleCase upper-cases the first letter of every word and lower-cases
// the rest, a word starts at any letter that follows a non-letter.
func TitleCase(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			out.WriteRune(unicode.ToTitle(r))
		case isLetter:
			out.WriteRune(unicode.ToLower(r))
		default:
			out.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return out.String()
}

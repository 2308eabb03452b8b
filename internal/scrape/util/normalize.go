package util

import (
	"strings"
	"unicode/utf8"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Truncate keeps the first limit runes of s and appends marker.
// The marker is always appended so callers can tell the text was summarized.
func Truncate(s string, limit int, marker string) string {
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(s) > limit {
		r := []rune(s)
		s = string(r[:limit])
	}
	return s + marker
}

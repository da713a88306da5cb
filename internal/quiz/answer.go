package quiz

import (
	"strings"

	"github.com/abhisek/tensequiz/internal/catalog"
)

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CheckAnswer reports whether input matches any accepted variant of
// expectedField. Comparison is case-insensitive and ignores surrounding
// whitespace. Blank input never matches.
func CheckAnswer(input, expectedField string) bool {
	got := Normalize(input)
	if got == "" {
		return false
	}
	for _, v := range catalog.Variants(expectedField) {
		if Normalize(v) == got {
			return true
		}
	}
	return false
}

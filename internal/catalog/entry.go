package catalog

import "strings"

// Delimiter separates accepted surface forms within a single tense field,
// e.g. "am / is".
const Delimiter = " / "

// Entry is a single vocabulary word with its present and past forms.
type Entry struct {
	ID          int    `json:"id"`
	Present     string `json:"present"`
	Past        string `json:"past"`
	Translation string `json:"translation"`
}

// Variants splits a tense field into its accepted surface forms.
// A field without the delimiter yields a single variant.
func Variants(field string) []string {
	return strings.Split(field, Delimiter)
}

package quiz

import "strings"

// HintMask is the token shown in place of a hidden character.
const HintMask = "_"

// GenerateHint masks the middle of word, one token per character:
//
//	"a"       -> "a"
//	"am"      -> "a _"
//	"did"     -> "d _ d"
//	"painted" -> "p _ _ _ _ e d"
//
// Words of four or more characters keep the first and last two characters.
// The whole field is hinted as given, delimiter included.
func GenerateHint(word string) string {
	chars := []rune(word)
	n := len(chars)

	switch n {
	case 0:
		return ""
	case 1:
		return string(chars[0])
	case 2:
		return string(chars[0]) + " " + HintMask
	case 3:
		return string(chars[0]) + " " + HintMask + " " + string(chars[2])
	}

	tokens := make([]string, n)
	for i, c := range chars {
		if i == 0 || i >= n-2 {
			tokens[i] = string(c)
		} else {
			tokens[i] = HintMask
		}
	}
	return strings.Join(tokens, " ")
}

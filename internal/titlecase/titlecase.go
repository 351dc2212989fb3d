// Package titlecase converts outline headers and entry titles to title case.
package titlecase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// smallWords stay lowercase unless they open or close the title.
var smallWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "or": {}, "for": {}, "nor": {}, "so": {}, "yet": {},
	"at": {}, "by": {}, "in": {}, "of": {}, "on": {}, "to": {}, "up": {},
	"with": {}, "as": {}, "per": {}, "vs": {},
}

// IsSmallWord reports whether w is kept lowercase in the middle of a title.
// The comparison is exact, so callers pass an already lowercased word.
func IsSmallWord(w string) bool {
	_, ok := smallWords[w]
	return ok
}

// String lowercases text, splits it on single spaces and capitalizes the
// first letter of every word except interior small words. Runs of spaces
// collapse to one.
func String(text string) string {
	words := strings.Split(strings.ToLower(text), " ")

	kept := words[:0]
	for _, w := range words {
		if w != "" {
			kept = append(kept, w)
		}
	}

	last := len(kept) - 1
	for i, w := range kept {
		if i != 0 && i != last && IsSmallWord(w) {
			continue
		}
		kept[i] = capitalize(w)
	}
	return strings.Join(kept, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator replaces every run of characters that cannot appear in an identifier.
const Separator = '_'

// Identifier derives the Swift accessor name for a localization key: the key is
// lowercased and each run of characters outside [a-z0-9] becomes one Separator.
//
// The result is never empty for a non-empty key, and Identifier(Identifier(k))
// equals Identifier(k).
func Identifier(key string) string {
	// A Caser keeps state, so each call gets its own.
	folded := cases.Lower(language.Und).String(key)

	var b strings.Builder
	b.Grow(len(folded))
	inRun := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteRune(Separator)
			inRun = true
		}
	}
	return b.String()
}

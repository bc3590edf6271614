package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares user text for number parsing:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses every run of whitespace (spaces, tabs, newlines) into one space
//
// Hyphens and all other characters are preserved so that later validation
// can reject them.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

package usecase

import (
	"strings"
	"unicode"
)

const maxSuggestedNameRunes = 50

// SuggestFilename turns a model title into a file name that keeps the
// original extension. Characters invalid in common file systems are dropped.
func SuggestFilename(title, ext string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(`<>:"/\|?*`, r) {
			return -1
		}
		return r
	}, title)
	cleaned = strings.TrimSpace(strings.Join(strings.Fields(cleaned), " "))
	cleaned = strings.Trim(cleaned, ".")

	runes := []rune(cleaned)
	if len(runes) > maxSuggestedNameRunes {
		cleaned = strings.TrimSpace(string(runes[:maxSuggestedNameRunes]))
	}
	if cleaned == "" {
		return ""
	}
	return cleaned + ext
}

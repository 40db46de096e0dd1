package classifier

import (
	"sort"
	"strings"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
)

// Classifier resolves uploads against a fixed extension allow-list.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	byExtension map[string]domain.FileCategory
	allowed     []string
}

func New() *Classifier {
	byExtension := make(map[string]domain.FileCategory)
	for category, extensions := range categoryExtensions {
		for _, ext := range extensions {
			byExtension[ext] = category
		}
	}
	allowed := make([]string, 0, len(byExtension))
	for ext := range byExtension {
		allowed = append(allowed, ext)
	}
	sort.Strings(allowed)

	return &Classifier{
		byExtension: byExtension,
		allowed:     allowed,
	}
}

// AllowedExtensions returns the sorted allow-list.
func (c *Classifier) AllowedExtensions() []string {
	out := make([]string, len(c.allowed))
	copy(out, c.allowed)
	return out
}

func (c *Classifier) Classify(filename, declaredMediaType string) (string, domain.FileCategory, error) {
	var ext string
	if isGenericName(filename) {
		ext = extensionFromMediaType(declaredMediaType)
	} else {
		ext = extensionOf(filename)
	}

	category, ok := c.byExtension[ext]
	if !ok {
		return ext, domain.CategoryUnknown, &domain.UnsupportedFormatError{
			Extension: ext,
			Allowed:   c.AllowedExtensions(),
		}
	}
	return ext, category, nil
}

func isGenericName(filename string) bool {
	switch filename {
	case "", "blob", "unknown_file":
		return true
	default:
		return false
	}
}

func extensionFromMediaType(mediaType string) string {
	for _, rule := range mediaTypeExtensions {
		if strings.Contains(mediaType, rule.contains) {
			return rule.extension
		}
	}
	return defaultExtension
}

// extensionOf returns the lower-cased suffix from the last dot of the base
// name. Leading dots (".bashrc") do not start an extension.
func extensionOf(filename string) string {
	name := strings.ToLower(filename)
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	stem := strings.TrimLeft(name, ".")
	idx := strings.LastIndexByte(stem, '.')
	if idx < 0 {
		return ""
	}
	return stem[idx:]
}

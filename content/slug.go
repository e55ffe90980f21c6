package content

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug applies the default slug normalization rules.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// DeriveSlug builds a shareable site slug from the couple's display names.
// Joiners ("&", "+", "and") are stripped so "Alex & Jordan" and
// "Alex and Jordan" derive the same slug.
func DeriveSlug(names string) (string, error) {
	cleaned := strings.NewReplacer("&", " ", "+", " ").Replace(names)
	words := strings.Fields(cleaned)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if strings.EqualFold(word, "and") {
			continue
		}
		kept = append(kept, word)
	}
	return NormalizeSlug(strings.Join(kept, " "))
}

package content

import (
	"strings"
	"time"
)

// NormalizeNames canonicalizes a couple's display names so every theme shows
// the same joiner: "Alex and Jordan", "Alex + Jordan", and "Alex&Jordan" all
// become "Alex & Jordan".
func NormalizeNames(names string) string {
	cleaned := strings.NewReplacer("&", " & ", "+", " & ").Replace(names)
	words := strings.Fields(cleaned)
	for i, word := range words {
		if strings.EqualFold(word, "and") {
			words[i] = "&"
		}
	}
	return strings.Join(words, " ")
}

// FormatDisplayDate renders an ISO date (2026-10-31) in the uppercase
// display form ("OCT 31, 2026") used by the hero section.
func FormatDisplayDate(isoDate string) (string, error) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(isoDate))
	if err != nil {
		return "", ErrDateInvalid
	}
	return strings.ToUpper(parsed.Format("Jan 2, 2006")), nil
}

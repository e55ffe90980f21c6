package merge

import (
	"strings"

	"github.com/vowcraft/vowcraft/content"
)

// flatMapping routes one legacy flat key onto its structured path.
type flatMapping struct {
	keys []string
	path []string
}

// Flat inputs predate the sectioned config layout: marketing presets and
// early site rows stored a handful of top-level scalars. Only the keys
// listed here are adopted; everything else in a flat input is dropped and
// the structured paths keep their defaults.
var flatMappings = []flatMapping{
	{keys: []string{"names", "couple", "coupleNames"}, path: []string{content.SectionHero, "names"}},
	{keys: []string{"date", "weddingDate"}, path: []string{content.SectionHero, "date"}},
	{keys: []string{"headline", "tagline"}, path: []string{content.SectionHero, "tagline"}},
	{keys: []string{"image", "heroImage"}, path: []string{content.SectionHero, "image"}},
	{keys: []string{"color", "accentColor", "accent_color", "primaryColor"}, path: []string{content.SectionTheme, "global", "palette", "primary"}},
}

func applyFlatInput(input map[string]any, defaults content.Document) content.Document {
	out := defaults
	for _, mapping := range flatMappings {
		for _, key := range mapping.keys {
			raw, ok := input[key]
			if !ok {
				continue
			}
			value, ok := raw.(string)
			if !ok || strings.TrimSpace(value) == "" {
				continue
			}
			setPath(out, mapping.path, adaptFlatValue(mapping.path, value))
			break
		}
	}
	return out
}

func adaptFlatValue(path []string, value string) string {
	if len(path) != 2 || path[0] != content.SectionHero {
		return value
	}
	switch path[1] {
	case "names":
		return content.NormalizeNames(value)
	case "date":
		if formatted, err := content.FormatDisplayDate(value); err == nil {
			return formatted
		}
		return value
	default:
		return value
	}
}

// setPath writes value at the nested path, creating intermediate maps when a
// default branch is missing or malformed.
func setPath(doc map[string]any, path []string, value any) {
	node := doc
	for _, segment := range path[:len(path)-1] {
		child, ok := node[segment].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[segment] = child
		}
		node = child
	}
	node[path[len(path)-1]] = value
}

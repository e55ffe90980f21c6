package content

// Document is the nested data object describing one site's customizable
// copy, media, and palette. Top-level keys are section names; the concrete
// shape below each section is only known by cross-referencing the active
// theme schema.
type Document = map[string]any

// Well-known section keys shared by the built-in themes. Themes may carry
// additional sections; the editor ignores sections absent from the active
// schema.
const (
	SectionHero      = "hero"
	SectionStory     = "story"
	SectionLogistics = "logistics"
	SectionRSVP      = "rsvp"
	SectionGallery   = "gallery"
	SectionTheme     = "theme"
)

// Status values for a persisted site record.
const (
	StatusDemo       = "demo"
	StatusProduction = "production"
)

// Clone returns a deep copy of the document. Nested maps and slices are
// copied recursively; scalar values are shared (they are immutable).
func Clone(doc Document) Document {
	if doc == nil {
		return nil
	}
	return DeepCloneMap(doc)
}

// DeepCloneMap deep-copies a JSON-shaped map.
func DeepCloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = deepCloneValue(value)
	}
	return out
}

// DeepCloneSlice deep-copies a JSON-shaped slice.
func DeepCloneSlice(src []any) []any {
	if src == nil {
		return nil
	}
	out := make([]any, len(src))
	for i, value := range src {
		out[i] = deepCloneValue(value)
	}
	return out
}

func deepCloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return DeepCloneMap(typed)
	case []any:
		return DeepCloneSlice(typed)
	default:
		return typed
	}
}

// Section returns the named section as a map, or nil when absent or not
// map-shaped.
func Section(doc Document, key string) map[string]any {
	if doc == nil {
		return nil
	}
	section, _ := doc[key].(map[string]any)
	return section
}

// Lookup walks the document along path segments, descending through nested
// maps. The boolean reports whether every segment resolved.
func Lookup(doc Document, path ...string) (any, bool) {
	var current any = map[string]any(doc)
	for _, segment := range path {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok := node[segment]
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}

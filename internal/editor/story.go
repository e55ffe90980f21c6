package editor

import "github.com/vowcraft/vowcraft/content"

// storyKind tags the persisted shape of a story section so the original
// layout can be restored on write. Themes disagree about the story shape:
// newer schemas key the timeline under "events" (or "chapters"), older rows
// store a bare list, and the oldest store a single object.
type storyKind int

const (
	storyObject storyKind = iota
	storyArray
	storyKeyed
)

// storyListKeys are the map keys recognized as holding a keyed timeline.
var storyListKeys = []string{"events", "chapters"}

type storyForm struct {
	kind storyKind
	key  string
}

// normalizeStory coerces any of the three story shapes into an editable
// slice of entries, returning the form needed to restore the shape later.
func normalizeStory(value any) ([]any, storyForm) {
	switch typed := value.(type) {
	case []any:
		return content.DeepCloneSlice(typed), storyForm{kind: storyArray}
	case map[string]any:
		for _, key := range storyListKeys {
			if list, ok := typed[key].([]any); ok {
				return content.DeepCloneSlice(list), storyForm{kind: storyKeyed, key: key}
			}
		}
		return []any{content.DeepCloneMap(typed)}, storyForm{kind: storyObject}
	default:
		return []any{}, storyForm{kind: storyArray}
	}
}

// denormalizeStory writes the edited entries back in the section's original
// shape. For the keyed form, sibling keys of the original map are preserved.
func denormalizeStory(entries []any, form storyForm, original any) any {
	switch form.kind {
	case storyKeyed:
		out := map[string]any{}
		if typed, ok := original.(map[string]any); ok {
			for key, value := range typed {
				if key == form.key {
					continue
				}
				out[key] = value
			}
		}
		out[form.key] = entries
		return out
	case storyObject:
		if len(entries) == 1 {
			return entries[0]
		}
		return entries
	default:
		return entries
	}
}

package editor

import (
	"strings"

	"github.com/vowcraft/vowcraft/content"
)

// LogisticsRoot addresses the top-level fields of the logistics section.
// A real group key ("ceremony", "reception") addresses the named nested
// group instead.
const LogisticsRoot = "__logistics__"

// Every update below is immutable: it returns a new top-level document in
// which only the touched section branch is replaced; every sibling section
// is reused by reference.

// UpdateHero sets one hero field.
func UpdateHero(doc content.Document, field string, value any) content.Document {
	return replaceSectionField(doc, content.SectionHero, field, value)
}

// UpdateRSVP sets one rsvp field.
func UpdateRSVP(doc content.Document, field string, value any) content.Document {
	return replaceSectionField(doc, content.SectionRSVP, field, value)
}

// UpdateStory sets one field of the story entry at index, regardless of
// which of the three story shapes the document carries. The persisted shape
// is preserved on write.
func UpdateStory(doc content.Document, index int, field string, value any) content.Document {
	original := doc[content.SectionStory]
	entries, form := normalizeStory(original)
	if index < 0 || index >= len(entries) {
		return doc
	}
	entry, ok := entries[index].(map[string]any)
	if !ok {
		return doc
	}
	updated := shallowCopyMap(entry)
	updated[field] = value
	entries[index] = updated

	out := shallowCopyDocument(doc)
	out[content.SectionStory] = denormalizeStory(entries, form, original)
	return out
}

// AppendStoryEntry adds a new entry at the end of the story timeline.
func AppendStoryEntry(doc content.Document, entry map[string]any) content.Document {
	original := doc[content.SectionStory]
	entries, form := normalizeStory(original)
	entries = append(entries, content.DeepCloneMap(entry))

	out := shallowCopyDocument(doc)
	out[content.SectionStory] = denormalizeStory(entries, form, original)
	return out
}

// RemoveStoryEntry deletes the story entry at index.
func RemoveStoryEntry(doc content.Document, index int) content.Document {
	original := doc[content.SectionStory]
	entries, form := normalizeStory(original)
	if index < 0 || index >= len(entries) {
		return doc
	}
	next := make([]any, 0, len(entries)-1)
	next = append(next, entries[:index]...)
	next = append(next, entries[index+1:]...)
	entries = next

	out := shallowCopyDocument(doc)
	out[content.SectionStory] = denormalizeStory(entries, form, original)
	return out
}

// UpdateLogistics sets one logistics field. The group argument selects the
// addressing tier: LogisticsRoot targets the section's own fields, any other
// value targets the named nested group.
func UpdateLogistics(doc content.Document, group, field string, value any) content.Document {
	if group == LogisticsRoot {
		return replaceSectionField(doc, content.SectionLogistics, field, value)
	}

	section := shallowCopyMap(content.Section(doc, content.SectionLogistics))
	nested := shallowCopyMap(asMap(section[group]))
	nested[field] = value
	section[group] = nested

	out := shallowCopyDocument(doc)
	out[content.SectionLogistics] = section
	return out
}

// AppendGalleryImage adds an image URL to the gallery list.
func AppendGalleryImage(doc content.Document, url string) content.Document {
	return updateGalleryImages(doc, func(images []any) []any {
		return append(images, url)
	})
}

// ReplaceGalleryImage swaps the image URL at index.
func ReplaceGalleryImage(doc content.Document, index int, url string) content.Document {
	return updateGalleryImages(doc, func(images []any) []any {
		if index < 0 || index >= len(images) {
			return images
		}
		images[index] = url
		return images
	})
}

// RemoveGalleryImage deletes the image URL at index.
func RemoveGalleryImage(doc content.Document, index int) content.Document {
	return updateGalleryImages(doc, func(images []any) []any {
		if index < 0 || index >= len(images) {
			return images
		}
		next := make([]any, 0, len(images)-1)
		next = append(next, images[:index]...)
		return append(next, images[index+1:]...)
	})
}

// UpdateField is the generic fallback for sections without a dedicated
// update function. Dotted field keys ("global.palette.primary") address
// nested groups; intermediate branches are copied, siblings reused.
func UpdateField(doc content.Document, section, field string, value any) content.Document {
	segments := strings.Split(field, ".")

	sectionMap := shallowCopyMap(content.Section(doc, section))
	node := sectionMap
	for _, segment := range segments[:len(segments)-1] {
		child := shallowCopyMap(asMap(node[segment]))
		node[segment] = child
		node = child
	}
	node[segments[len(segments)-1]] = value

	out := shallowCopyDocument(doc)
	out[section] = sectionMap
	return out
}

func updateGalleryImages(doc content.Document, apply func([]any) []any) content.Document {
	section := shallowCopyMap(content.Section(doc, content.SectionGallery))
	images, _ := section["images"].([]any)
	// Re-derive the list rather than mutating the stored slice.
	copied := make([]any, len(images))
	copy(copied, images)
	section["images"] = apply(copied)

	out := shallowCopyDocument(doc)
	out[content.SectionGallery] = section
	return out
}

func replaceSectionField(doc content.Document, sectionKey, field string, value any) content.Document {
	section := shallowCopyMap(content.Section(doc, sectionKey))
	section[field] = value

	out := shallowCopyDocument(doc)
	out[sectionKey] = section
	return out
}

func shallowCopyDocument(doc content.Document) content.Document {
	out := make(content.Document, len(doc)+1)
	for key, value := range doc {
		out[key] = value
	}
	return out
}

func shallowCopyMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src)+1)
	for key, value := range src {
		out[key] = value
	}
	return out
}

func asMap(value any) map[string]any {
	typed, _ := value.(map[string]any)
	return typed
}

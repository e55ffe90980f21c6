package editor

import (
	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/schema"
)

// SectionView is one rendered editor section: the schema's label plus the
// resolved controls in declaration order.
type SectionView struct {
	Key    string      `json:"section"`
	Label  string      `json:"label"`
	Fields []FieldView `json:"fields"`
}

// FieldView is one rendered control. Value holds the resolved current value
// for scalar controls; Fields holds rendered sub-controls for groups; Items
// holds one rendered row per element for arrays.
type FieldView struct {
	Key         string           `json:"key"`
	Label       string           `json:"label"`
	Type        schema.FieldType `json:"type"`
	Placeholder string           `json:"placeholder,omitempty"`
	Options     []string         `json:"options,omitempty"`
	Value       any              `json:"value,omitempty"`
	Fields      []FieldView      `json:"fields,omitempty"`
	Items       [][]FieldView    `json:"items,omitempty"`
}

// Render walks the theme schema and the content document in lockstep and
// returns the editor's form model. Sections present in the document but
// absent from the schema are not rendered; that is how theme-specific legacy
// data degrades gracefully after a schema update.
func Render(themeSchema schema.ThemeSchema, doc content.Document) []SectionView {
	out := make([]SectionView, 0, len(themeSchema))
	for _, section := range themeSchema {
		view := SectionView{Key: section.Key, Label: section.Label}
		value := doc[section.Key]
		view.Fields = renderFields(section.Key, section.Fields, value)
		out = append(out, view)
	}
	return out
}

func renderFields(sectionKey string, fields []schema.Field, value any) []FieldView {
	node := resolveSectionNode(sectionKey, fields, value)
	out := make([]FieldView, 0, len(fields))
	for _, field := range fields {
		out = append(out, renderField(sectionKey, field, node[field.Key]))
	}
	return out
}

// resolveSectionNode returns the map the section's fields are read from.
// The story section's legacy shapes (bare list, bare object) are coerced to
// the keyed form the schema was written against.
func resolveSectionNode(sectionKey string, fields []schema.Field, value any) map[string]any {
	if node, ok := value.(map[string]any); ok {
		if sectionKey == content.SectionStory && len(fields) == 1 && fields[0].Type == schema.FieldArray {
			if _, ok := node[fields[0].Key]; !ok {
				entries, _ := normalizeStory(value)
				return map[string]any{fields[0].Key: entries}
			}
		}
		return node
	}
	if len(fields) == 1 && fields[0].Type == schema.FieldArray {
		entries, _ := normalizeStory(value)
		return map[string]any{fields[0].Key: entries}
	}
	return nil
}

func renderField(sectionKey string, field schema.Field, value any) FieldView {
	view := FieldView{
		Key:         field.Key,
		Label:       field.Label,
		Type:        field.Type,
		Placeholder: field.Placeholder,
		Options:     field.Options,
	}

	switch field.Type {
	case schema.FieldGroup:
		node := asMap(value)
		view.Fields = make([]FieldView, 0, len(field.Fields))
		for _, child := range field.Fields {
			view.Fields = append(view.Fields, renderField(sectionKey, child, node[child.Key]))
		}
	case schema.FieldArray:
		items, _ := value.([]any)
		view.Items = make([][]FieldView, 0, len(items))
		for _, item := range items {
			node := asMap(item)
			row := make([]FieldView, 0, len(field.ItemSchema))
			for _, child := range field.ItemSchema {
				row = append(row, renderField(sectionKey, child, node[child.Key]))
			}
			view.Items = append(view.Items, row)
		}
	case schema.FieldImageList:
		if list, ok := value.([]any); ok {
			view.Value = list
		} else {
			view.Value = []any{}
		}
	default:
		view.Value = value
	}
	return view
}

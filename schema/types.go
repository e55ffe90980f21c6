package schema

// FieldType enumerates the editor controls a field can render as.
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldTextarea  FieldType = "textarea"
	FieldImage     FieldType = "image"
	FieldImageList FieldType = "image-list"
	FieldColor     FieldType = "color"
	FieldSelect    FieldType = "select"
	FieldGroup     FieldType = "group"
	FieldArray     FieldType = "array"
)

// Field describes a single editable value inside a content section.
//
// Key is the path segment locating the field's value relative to its
// enclosing section (or group/array element). Fields is populated only for
// FieldGroup entries; ItemSchema only for FieldArray entries.
type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Fields      []Field   `json:"fields,omitempty"`
	ItemSchema  []Field   `json:"item_schema,omitempty"`
}

// Section groups the ordered fields of one top-level content section.
type Section struct {
	Key    string  `json:"section"`
	Label  string  `json:"label"`
	Fields []Field `json:"fields"`
}

// ThemeSchema is the ordered list of sections a theme exposes to the editor.
// Order determines display order only.
type ThemeSchema []Section

// Section returns the section schema registered under key, if any.
func (s ThemeSchema) Section(key string) (Section, bool) {
	for _, section := range s {
		if section.Key == key {
			return section, true
		}
	}
	return Section{}, false
}

// Clone returns a deep copy of the theme schema.
func (s ThemeSchema) Clone() ThemeSchema {
	if len(s) == 0 {
		return nil
	}
	out := make(ThemeSchema, len(s))
	for i, section := range s {
		out[i] = Section{
			Key:    section.Key,
			Label:  section.Label,
			Fields: cloneFields(section.Fields),
		}
	}
	return out
}

func cloneFields(fields []Field) []Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		cloned := field
		cloned.Options = append([]string(nil), field.Options...)
		cloned.Fields = cloneFields(field.Fields)
		cloned.ItemSchema = cloneFields(field.ItemSchema)
		out[i] = cloned
	}
	return out
}

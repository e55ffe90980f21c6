package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/schema"
)

var (
	ErrDocumentInvalid    = errors.New("validation: document invalid")
	ErrDocumentIncomplete = errors.New("validation: document missing schema fields")
)

// DocumentError reports the unresolved or mistyped paths found while
// validating a content document against a theme schema.
type DocumentError struct {
	Paths []string
	Cause error
}

func (e *DocumentError) Error() string {
	if len(e.Paths) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	return fmt.Sprintf("unresolved paths: %s", strings.Join(e.Paths, ", "))
}

func (e *DocumentError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrDocumentIncomplete
}

// ValidateDocument checks that every path reachable by walking the theme
// schema resolves to a defined value in the document, and that the document
// satisfies the JSON schema derived from the theme schema. Sections present
// in the document but absent from the schema are ignored.
func ValidateDocument(themeSchema schema.ThemeSchema, doc content.Document) error {
	if doc == nil {
		doc = content.Document{}
	}

	var missing []string
	for _, section := range themeSchema {
		value, ok := doc[section.Key]
		if !ok || value == nil {
			missing = append(missing, section.Key)
			continue
		}
		missing = append(missing, walkSection(section, value)...)
	}
	if len(missing) > 0 {
		return &DocumentError{Paths: missing}
	}

	compiled, err := compileThemeSchema(themeSchema)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	if err := compiled.Validate(map[string]any(doc)); err != nil {
		return &DocumentError{Cause: fmt.Errorf("%w: %v", ErrDocumentInvalid, err)}
	}
	return nil
}

func walkSection(section schema.Section, value any) []string {
	// A section stored as a bare list is the legacy shape for a section whose
	// schema is a single array field; its elements carry the item schema.
	if list, ok := value.([]any); ok {
		if len(section.Fields) == 1 && section.Fields[0].Type == schema.FieldArray {
			return walkArrayItems(section.Key, section.Fields[0].ItemSchema, list)
		}
		return []string{section.Key}
	}

	node, ok := value.(map[string]any)
	if !ok {
		// Bare object standing in for a single-element array section.
		if len(section.Fields) == 1 && section.Fields[0].Type == schema.FieldArray {
			return nil
		}
		return []string{section.Key}
	}
	return walkFields(section.Key, section.Fields, node)
}

func walkFields(prefix string, fields []schema.Field, node map[string]any) []string {
	var missing []string
	for _, field := range fields {
		path := prefix + "." + field.Key
		value, ok := node[field.Key]
		if !ok || value == nil {
			missing = append(missing, path)
			continue
		}
		switch field.Type {
		case schema.FieldGroup:
			child, ok := value.(map[string]any)
			if !ok {
				missing = append(missing, path)
				continue
			}
			missing = append(missing, walkFields(path, field.Fields, child)...)
		case schema.FieldArray:
			list, ok := value.([]any)
			if !ok {
				missing = append(missing, path)
				continue
			}
			missing = append(missing, walkArrayItems(path, field.ItemSchema, list)...)
		case schema.FieldImageList:
			if _, ok := value.([]any); !ok {
				missing = append(missing, path)
			}
		}
	}
	return missing
}

func walkArrayItems(prefix string, itemSchema []schema.Field, list []any) []string {
	var missing []string
	for i, item := range list {
		node, ok := item.(map[string]any)
		if !ok {
			missing = append(missing, fmt.Sprintf("%s[%d]", prefix, i))
			continue
		}
		missing = append(missing, walkFields(fmt.Sprintf("%s[%d]", prefix, i), itemSchema, node)...)
	}
	return missing
}

// JSONSchema derives a JSON schema document from a theme schema. Sections
// and fields become required object properties; scalar field types map to
// strings, image lists to string arrays.
func JSONSchema(themeSchema schema.ThemeSchema) map[string]any {
	properties := map[string]any{}
	required := make([]string, 0, len(themeSchema))
	for _, section := range themeSchema {
		properties[section.Key] = sectionJSONSchema(section)
		required = append(required, section.Key)
	}
	out := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

func sectionJSONSchema(section schema.Section) map[string]any {
	object := fieldsJSONSchema(section.Fields)
	if len(section.Fields) == 1 && section.Fields[0].Type == schema.FieldArray {
		// Legacy story shapes: a bare array or a bare object are accepted
		// alongside the canonical keyed form.
		return map[string]any{
			"anyOf": []any{
				object,
				map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "object"},
				},
				map[string]any{"type": "object"},
			},
		}
	}
	return object
}

func fieldsJSONSchema(fields []schema.Field) map[string]any {
	properties := map[string]any{}
	required := make([]string, 0, len(fields))
	for _, field := range fields {
		properties[field.Key] = fieldJSONSchema(field)
		required = append(required, field.Key)
	}
	out := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

func fieldJSONSchema(field schema.Field) map[string]any {
	switch field.Type {
	case schema.FieldGroup:
		return fieldsJSONSchema(field.Fields)
	case schema.FieldArray:
		return map[string]any{
			"type":  "array",
			"items": fieldsJSONSchema(field.ItemSchema),
		}
	case schema.FieldImageList:
		return map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		}
	case schema.FieldSelect:
		out := map[string]any{"type": "string"}
		if len(field.Options) > 0 {
			options := make([]any, len(field.Options))
			for i, option := range field.Options {
				options[i] = option
			}
			out["enum"] = options
		}
		return out
	default:
		return map[string]any{"type": "string"}
	}
}

func compileThemeSchema(themeSchema schema.ThemeSchema) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(JSONSchema(themeSchema))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/schema"
)

func testSchema() schema.ThemeSchema {
	return schema.ThemeSchema{
		{
			Key: "hero",
			Fields: []schema.Field{
				{Key: "names", Type: schema.FieldText},
				{Key: "date", Type: schema.FieldText},
			},
		},
		{
			Key: "logistics",
			Fields: []schema.Field{
				{
					Key:  "ceremony",
					Type: schema.FieldGroup,
					Fields: []schema.Field{
						{Key: "venue", Type: schema.FieldText},
						{Key: "time", Type: schema.FieldText},
					},
				},
			},
		},
		{
			Key: "story",
			Fields: []schema.Field{
				{
					Key:  "events",
					Type: schema.FieldArray,
					ItemSchema: []schema.Field{
						{Key: "title", Type: schema.FieldText},
					},
				},
			},
		},
		{
			Key: "gallery",
			Fields: []schema.Field{
				{Key: "images", Type: schema.FieldImageList},
			},
		},
	}
}

func completeDocument() content.Document {
	return content.Document{
		"hero": map[string]any{"names": "A & B", "date": "JUN 1, 2026"},
		"logistics": map[string]any{
			"ceremony": map[string]any{"venue": "Hall", "time": "3pm"},
		},
		"story": map[string]any{
			"events": []any{map[string]any{"title": "Met"}},
		},
		"gallery": map[string]any{"images": []any{"a.jpg"}},
	}
}

func TestValidateDocumentComplete(t *testing.T) {
	if err := ValidateDocument(testSchema(), completeDocument()); err != nil {
		t.Fatalf("complete document rejected: %v", err)
	}
}

func TestValidateDocumentMissingNestedField(t *testing.T) {
	doc := completeDocument()
	delete(doc["logistics"].(map[string]any)["ceremony"].(map[string]any), "time")

	err := ValidateDocument(testSchema(), doc)
	if err == nil {
		t.Fatalf("expected missing field error")
	}
	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected DocumentError, got %T", err)
	}
	if len(docErr.Paths) != 1 || !strings.Contains(docErr.Paths[0], "logistics.ceremony.time") {
		t.Fatalf("unexpected paths %v", docErr.Paths)
	}
}

func TestValidateDocumentLegacyArraySection(t *testing.T) {
	doc := completeDocument()
	doc["story"] = []any{map[string]any{"title": "Met"}}
	if err := ValidateDocument(testSchema(), doc); err != nil {
		t.Fatalf("legacy array story rejected: %v", err)
	}
}

func TestValidateDocumentExtraSectionIgnored(t *testing.T) {
	doc := completeDocument()
	doc["marketing"] = map[string]any{"body": "<p>hi</p>"}
	if err := ValidateDocument(testSchema(), doc); err != nil {
		t.Fatalf("extra section should be ignored: %v", err)
	}
}

func TestValidateDocumentNil(t *testing.T) {
	err := ValidateDocument(testSchema(), nil)
	if err == nil {
		t.Fatalf("expected error for nil document")
	}
	if !errors.Is(err, ErrDocumentIncomplete) {
		t.Fatalf("expected ErrDocumentIncomplete, got %v", err)
	}
}

func TestJSONSchemaShape(t *testing.T) {
	js := JSONSchema(testSchema())
	properties, ok := js["properties"].(map[string]any)
	if !ok {
		t.Fatalf("missing properties")
	}
	if _, ok := properties["hero"]; !ok {
		t.Fatalf("hero missing from derived schema")
	}
	gallery := properties["gallery"].(map[string]any)["properties"].(map[string]any)
	images := gallery["images"].(map[string]any)
	if images["type"] != "array" {
		t.Fatalf("image-list should map to array, got %v", images["type"])
	}
}

package schema

import "testing"

func validSchema() ThemeSchema {
	return ThemeSchema{
		{
			Key:   "hero",
			Label: "Hero",
			Fields: []Field{
				{Key: "names", Label: "Names", Type: FieldText},
				{Key: "date", Label: "Date", Type: FieldText},
				{Key: "image", Label: "Image", Type: FieldImage},
			},
		},
		{
			Key:   "logistics",
			Label: "Logistics",
			Fields: []Field{
				{Key: "intro", Label: "Intro", Type: FieldTextarea},
				{
					Key:   "ceremony",
					Label: "Ceremony",
					Type:  FieldGroup,
					Fields: []Field{
						{Key: "venue", Label: "Venue", Type: FieldText},
						{Key: "time", Label: "Time", Type: FieldText},
					},
				},
			},
		},
		{
			Key:   "story",
			Label: "Our Story",
			Fields: []Field{
				{
					Key:   "events",
					Label: "Events",
					Type:  FieldArray,
					ItemSchema: []Field{
						{Key: "year", Label: "Year", Type: FieldText},
						{Key: "text", Label: "Text", Type: FieldTextarea},
					},
				},
			},
		},
	}
}

func TestThemeSchemaValidate(t *testing.T) {
	if err := validSchema().Validate(); err != nil {
		t.Fatalf("valid schema rejected: %v", err)
	}
}

func TestThemeSchemaValidateDuplicateSection(t *testing.T) {
	s := validSchema()
	s = append(s, Section{Key: "hero", Label: "Hero again", Fields: []Field{
		{Key: "names", Type: FieldText},
	}})
	if err := s.Validate(); err == nil {
		t.Fatalf("expected duplicate section key error")
	}
}

func TestThemeSchemaValidateDuplicateFieldKey(t *testing.T) {
	s := ThemeSchema{{
		Key: "hero",
		Fields: []Field{
			{Key: "names", Type: FieldText},
			{Key: "names", Type: FieldText},
		},
	}}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected duplicate field key error")
	}
}

func TestThemeSchemaValidateGroupWithoutFields(t *testing.T) {
	s := ThemeSchema{{
		Key:    "logistics",
		Fields: []Field{{Key: "ceremony", Type: FieldGroup}},
	}}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected group without sub-fields error")
	}
}

func TestThemeSchemaValidateArrayWithoutItemSchema(t *testing.T) {
	s := ThemeSchema{{
		Key:    "story",
		Fields: []Field{{Key: "events", Type: FieldArray}},
	}}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected array without item schema error")
	}
}

func TestThemeSchemaValidateUnknownType(t *testing.T) {
	s := ThemeSchema{{
		Key:    "hero",
		Fields: []Field{{Key: "names", Type: FieldType("richtext")}},
	}}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected unknown field type error")
	}
}

func TestThemeSchemaCloneIsDeep(t *testing.T) {
	original := validSchema()
	cloned := original.Clone()
	cloned[1].Fields[1].Fields[0].Key = "mutated"
	if original[1].Fields[1].Fields[0].Key != "venue" {
		t.Fatalf("clone shares nested field storage with original")
	}

	if _, ok := cloned.Section("story"); !ok {
		t.Fatalf("expected story section in clone")
	}
	if _, ok := cloned.Section("missing"); ok {
		t.Fatalf("unexpected section lookup hit")
	}
}

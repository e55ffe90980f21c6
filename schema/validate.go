package schema

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var knownFieldTypes = map[FieldType]struct{}{
	FieldText:      {},
	FieldTextarea:  {},
	FieldImage:     {},
	FieldImageList: {},
	FieldColor:     {},
	FieldSelect:    {},
	FieldGroup:     {},
	FieldArray:     {},
}

// Validate checks the structural invariants of a theme schema: section keys
// are unique and non-empty, field keys are unique within each nesting level,
// group fields carry sub-fields, and array fields carry an item schema.
func (s ThemeSchema) Validate() error {
	errs := validation.Errors{}
	seen := map[string]struct{}{}
	for i, section := range s {
		location := fmt.Sprintf("sections[%d]", i)
		if section.Key == "" {
			errs[location] = validation.NewError("schema.section_key_required", "section key is required")
			continue
		}
		if _, dup := seen[section.Key]; dup {
			errs[location] = validation.NewError("schema.section_key_duplicate",
				fmt.Sprintf("duplicate section key %q", section.Key))
			continue
		}
		seen[section.Key] = struct{}{}
		validateFields(errs, location+".fields", section.Fields)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateFields(errs validation.Errors, location string, fields []Field) {
	seen := map[string]struct{}{}
	for i, field := range fields {
		at := fmt.Sprintf("%s[%d]", location, i)
		if field.Key == "" {
			errs[at] = validation.NewError("schema.field_key_required", "field key is required")
			continue
		}
		if _, dup := seen[field.Key]; dup {
			errs[at] = validation.NewError("schema.field_key_duplicate",
				fmt.Sprintf("duplicate field key %q", field.Key))
			continue
		}
		seen[field.Key] = struct{}{}

		if _, ok := knownFieldTypes[field.Type]; !ok {
			errs[at] = validation.NewError("schema.field_type_unknown",
				fmt.Sprintf("unknown field type %q", field.Type))
			continue
		}

		switch field.Type {
		case FieldGroup:
			if len(field.Fields) == 0 {
				errs[at] = validation.NewError("schema.group_fields_required",
					fmt.Sprintf("group field %q requires sub-fields", field.Key))
				continue
			}
			validateFields(errs, at+".fields", field.Fields)
		case FieldArray:
			if len(field.ItemSchema) == 0 {
				errs[at] = validation.NewError("schema.array_item_schema_required",
					fmt.Sprintf("array field %q requires an item schema", field.Key))
				continue
			}
			validateFields(errs, at+".item_schema", field.ItemSchema)
		default:
			if len(field.Fields) > 0 {
				errs[at] = validation.NewError("schema.fields_not_allowed",
					fmt.Sprintf("field %q of type %q cannot declare sub-fields", field.Key, field.Type))
			}
			if len(field.ItemSchema) > 0 {
				errs[at] = validation.NewError("schema.item_schema_not_allowed",
					fmt.Sprintf("field %q of type %q cannot declare an item schema", field.Key, field.Type))
			}
		}
	}
}

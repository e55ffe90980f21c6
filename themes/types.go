package themes

import (
	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/schema"
)

// Definition pairs a theme's editor schema with its default content document
// and the marketing niches that can seed it.
type Definition struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Version     string             `json:"version"`
	Schema      schema.ThemeSchema `json:"schema"`
	Defaults    content.Document   `json:"defaults"`
	Niches      []Niche            `json:"niches,omitempty"`
}

// Niche is a theme-scoped marketing variant supplying partial content
// overrides merged onto the theme's defaults at creation time.
type Niche struct {
	Slug      string           `json:"slug"`
	Label     string           `json:"label"`
	Overrides content.Document `json:"overrides,omitempty"`
}

// Clone returns a deep copy of the definition.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	cloned := &Definition{
		ID:       d.ID,
		Name:     d.Name,
		Version:  d.Version,
		Schema:   d.Schema.Clone(),
		Defaults: content.Clone(d.Defaults),
	}
	if d.Description != nil {
		description := *d.Description
		cloned.Description = &description
	}
	if len(d.Niches) > 0 {
		cloned.Niches = make([]Niche, len(d.Niches))
		for i, niche := range d.Niches {
			cloned.Niches[i] = Niche{
				Slug:      niche.Slug,
				Label:     niche.Label,
				Overrides: content.Clone(niche.Overrides),
			}
		}
	}
	return cloned
}

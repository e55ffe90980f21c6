package themes

import (
	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/schema"
)

// Built-in theme identifiers.
const (
	ThemeVintageVinyl = "vintage-vinyl"
	ThemeVoyager      = "the-voyager"
)

// BuiltinDefinitions returns the theme definitions shipped with the builder.
func BuiltinDefinitions() []*Definition {
	return []*Definition{
		vintageVinylDefinition(),
		voyagerDefinition(),
	}
}

func vintageVinylDefinition() *Definition {
	description := "A record-sleeve homage: bold type, halftone photos, jukebox reds."
	return &Definition{
		ID:          ThemeVintageVinyl,
		Name:        "Vintage Vinyl",
		Description: &description,
		Version:     "1.2.0",
		Schema: schema.ThemeSchema{
			{
				Key:   content.SectionHero,
				Label: "Hero",
				Fields: []schema.Field{
					{Key: "names", Label: "Couple names", Type: schema.FieldText, Placeholder: "June & Johnny"},
					{Key: "date", Label: "Wedding date", Type: schema.FieldText},
					{Key: "tagline", Label: "Tagline", Type: schema.FieldText},
					{Key: "image", Label: "Cover photo", Type: schema.FieldImage},
				},
			},
			{
				Key:   content.SectionStory,
				Label: "Liner Notes",
				Fields: []schema.Field{
					{
						Key:   "events",
						Label: "Tracklist",
						Type:  schema.FieldArray,
						ItemSchema: []schema.Field{
							{Key: "year", Label: "Year", Type: schema.FieldText},
							{Key: "title", Label: "Title", Type: schema.FieldText},
							{Key: "text", Label: "Story", Type: schema.FieldTextarea},
						},
					},
				},
			},
			{
				Key:   content.SectionLogistics,
				Label: "The Show",
				Fields: []schema.Field{
					{Key: "intro", Label: "Intro", Type: schema.FieldTextarea},
					{
						Key:   "ceremony",
						Label: "Ceremony",
						Type:  schema.FieldGroup,
						Fields: []schema.Field{
							{Key: "venue", Label: "Venue", Type: schema.FieldText},
							{Key: "address", Label: "Address", Type: schema.FieldText},
							{Key: "time", Label: "Time", Type: schema.FieldText},
						},
					},
					{
						Key:   "reception",
						Label: "Reception",
						Type:  schema.FieldGroup,
						Fields: []schema.Field{
							{Key: "venue", Label: "Venue", Type: schema.FieldText},
							{Key: "address", Label: "Address", Type: schema.FieldText},
							{Key: "time", Label: "Time", Type: schema.FieldText},
						},
					},
					{Key: "dressCode", Label: "Dress code", Type: schema.FieldSelect, Options: []string{"casual", "cocktail", "black-tie"}},
				},
			},
			{
				Key:   content.SectionRSVP,
				Label: "RSVP",
				Fields: []schema.Field{
					{Key: "headline", Label: "Headline", Type: schema.FieldText},
					{Key: "deadline", Label: "Deadline", Type: schema.FieldText},
					{Key: "note", Label: "Note", Type: schema.FieldTextarea},
					{Key: "button", Label: "Button label", Type: schema.FieldText},
				},
			},
			{
				Key:   content.SectionGallery,
				Label: "Gallery",
				Fields: []schema.Field{
					{Key: "headline", Label: "Headline", Type: schema.FieldText},
					{Key: "images", Label: "Photos", Type: schema.FieldImageList},
				},
			},
			{
				Key:   content.SectionTheme,
				Label: "Look & Feel",
				Fields: []schema.Field{
					{
						Key:   "global",
						Label: "Global",
						Type:  schema.FieldGroup,
						Fields: []schema.Field{
							{
								Key:   "palette",
								Label: "Palette",
								Type:  schema.FieldGroup,
								Fields: []schema.Field{
									{Key: "primary", Label: "Primary", Type: schema.FieldColor},
									{Key: "background", Label: "Background", Type: schema.FieldColor},
									{Key: "text", Label: "Text", Type: schema.FieldColor},
								},
							},
							{
								Key:   "fonts",
								Label: "Fonts",
								Type:  schema.FieldGroup,
								Fields: []schema.Field{
									{Key: "heading", Label: "Heading", Type: schema.FieldSelect, Options: []string{"Abril Fatface", "Archivo Black", "Monoton"}},
									{Key: "body", Label: "Body", Type: schema.FieldSelect, Options: []string{"Space Grotesk", "Work Sans"}},
								},
							},
						},
					},
				},
			},
		},
		Defaults: content.Document{
			content.SectionHero: map[string]any{
				"names":   "June & Johnny",
				"date":    "JUN 1, 2026",
				"tagline": "Side A of forever",
				"image":   "https://assets.vowcraft.dev/vintage-vinyl/hero.jpg",
			},
			content.SectionStory: map[string]any{
				"events": []any{
					map[string]any{"year": "2019", "title": "Track 1: First Dance", "text": "We met at a record fair, arguing over the last pressing of Rumours."},
					map[string]any{"year": "2022", "title": "Track 2: B-Side", "text": "Moved in together with two cats and four hundred LPs."},
					map[string]any{"year": "2025", "title": "Track 3: The Question", "text": "A ring hidden in a gatefold sleeve."},
				},
			},
			content.SectionLogistics: map[string]any{
				"intro": "Doors open early. The needle drops at three.",
				"ceremony": map[string]any{
					"venue":   "The Rivoli Ballroom",
					"address": "350 Brockley Rd, London",
					"time":    "3:00 PM",
				},
				"reception": map[string]any{
					"venue":   "Little Lion Listening Bar",
					"address": "14 Market Yard, London",
					"time":    "6:00 PM",
				},
				"dressCode": "cocktail",
			},
			content.SectionRSVP: map[string]any{
				"headline": "Drop the needle",
				"deadline": "MAY 1, 2026",
				"note":     "Tell us your requests and we'll hand them to the DJ.",
				"button":   "Count me in",
			},
			content.SectionGallery: map[string]any{
				"headline": "Contact sheet",
				"images": []any{
					"https://assets.vowcraft.dev/vintage-vinyl/gallery-01.jpg",
					"https://assets.vowcraft.dev/vintage-vinyl/gallery-02.jpg",
				},
			},
			content.SectionTheme: map[string]any{
				"global": map[string]any{
					"palette": map[string]any{
						"primary":    "#d4a017",
						"background": "#171412",
						"text":       "#f5ead6",
					},
					"fonts": map[string]any{
						"heading": "Abril Fatface",
						"body":    "Space Grotesk",
					},
				},
			},
		},
		Niches: []Niche{
			{
				Slug:  "rock-n-roll-wedding",
				Label: "Rock'n'Roll Wedding",
				Overrides: content.Document{
					content.SectionHero: map[string]any{
						"tagline": "Louder than love",
					},
					content.SectionRSVP: map[string]any{
						"headline": "Get on the guest list",
					},
					content.SectionTheme: map[string]any{
						"global": map[string]any{
							"palette": map[string]any{
								"primary": "#e02e2e",
							},
						},
					},
				},
			},
			{
				Slug:  "jazz-club-wedding",
				Label: "Jazz Club Wedding",
				Overrides: content.Document{
					content.SectionHero: map[string]any{
						"tagline": "A standard, sung slow",
					},
					content.SectionTheme: map[string]any{
						"global": map[string]any{
							"palette": map[string]any{
								"primary": "#3d6bd8",
							},
						},
					},
				},
			},
		},
	}
}

func voyagerDefinition() *Definition {
	description := "Boarding passes, route maps, and a passport-stamp palette."
	return &Definition{
		ID:          ThemeVoyager,
		Name:        "The Voyager",
		Description: &description,
		Version:     "1.0.3",
		Schema: schema.ThemeSchema{
			{
				Key:   content.SectionHero,
				Label: "Departure Board",
				Fields: []schema.Field{
					{Key: "names", Label: "Couple names", Type: schema.FieldText, Placeholder: "Ada & Marco"},
					{Key: "date", Label: "Wedding date", Type: schema.FieldText},
					{Key: "tagline", Label: "Tagline", Type: schema.FieldText},
					{Key: "image", Label: "Hero photo", Type: schema.FieldImage},
				},
			},
			{
				Key:   content.SectionStory,
				Label: "Itinerary",
				Fields: []schema.Field{
					{
						Key:   "chapters",
						Label: "Legs",
						Type:  schema.FieldArray,
						ItemSchema: []schema.Field{
							{Key: "year", Label: "Year", Type: schema.FieldText},
							{Key: "title", Label: "Stop", Type: schema.FieldText},
							{Key: "text", Label: "Story", Type: schema.FieldTextarea},
						},
					},
				},
			},
			{
				Key:   content.SectionLogistics,
				Label: "Arrivals",
				Fields: []schema.Field{
					{Key: "intro", Label: "Intro", Type: schema.FieldTextarea},
					{
						Key:   "ceremony",
						Label: "Ceremony",
						Type:  schema.FieldGroup,
						Fields: []schema.Field{
							{Key: "venue", Label: "Venue", Type: schema.FieldText},
							{Key: "address", Label: "Address", Type: schema.FieldText},
							{Key: "time", Label: "Time", Type: schema.FieldText},
						},
					},
					{
						Key:   "reception",
						Label: "Reception",
						Type:  schema.FieldGroup,
						Fields: []schema.Field{
							{Key: "venue", Label: "Venue", Type: schema.FieldText},
							{Key: "address", Label: "Address", Type: schema.FieldText},
							{Key: "time", Label: "Time", Type: schema.FieldText},
						},
					},
					{Key: "dressCode", Label: "Dress code", Type: schema.FieldSelect, Options: []string{"resort", "cocktail", "formal"}},
				},
			},
			{
				Key:   content.SectionRSVP,
				Label: "Boarding",
				Fields: []schema.Field{
					{Key: "headline", Label: "Headline", Type: schema.FieldText},
					{Key: "deadline", Label: "Deadline", Type: schema.FieldText},
					{Key: "note", Label: "Note", Type: schema.FieldTextarea},
					{Key: "button", Label: "Button label", Type: schema.FieldText},
				},
			},
			{
				Key:   content.SectionGallery,
				Label: "Postcards",
				Fields: []schema.Field{
					{Key: "headline", Label: "Headline", Type: schema.FieldText},
					{Key: "images", Label: "Photos", Type: schema.FieldImageList},
				},
			},
			{
				Key:   content.SectionTheme,
				Label: "Look & Feel",
				Fields: []schema.Field{
					{
						Key:   "global",
						Label: "Global",
						Type:  schema.FieldGroup,
						Fields: []schema.Field{
							{
								Key:   "palette",
								Label: "Palette",
								Type:  schema.FieldGroup,
								Fields: []schema.Field{
									{Key: "primary", Label: "Primary", Type: schema.FieldColor},
									{Key: "background", Label: "Background", Type: schema.FieldColor},
									{Key: "text", Label: "Text", Type: schema.FieldColor},
								},
							},
							{
								Key:   "fonts",
								Label: "Fonts",
								Type:  schema.FieldGroup,
								Fields: []schema.Field{
									{Key: "heading", Label: "Heading", Type: schema.FieldSelect, Options: []string{"Fraunces", "DM Serif Display"}},
									{Key: "body", Label: "Body", Type: schema.FieldSelect, Options: []string{"Inter", "Karla"}},
								},
							},
						},
					},
				},
			},
		},
		Defaults: content.Document{
			content.SectionHero: map[string]any{
				"names":   "Ada & Marco",
				"date":    "SEP 12, 2026",
				"tagline": "Final boarding call",
				"image":   "https://assets.vowcraft.dev/the-voyager/hero.jpg",
			},
			// Legacy shape: the voyager stores its story as a bare list of
			// chapters rather than under a keyed map.
			content.SectionStory: []any{
				map[string]any{"year": "2018", "title": "Lisbon", "text": "A missed train and a shared timetable."},
				map[string]any{"year": "2021", "title": "Oaxaca", "text": "Two passports, one suitcase."},
				map[string]any{"year": "2025", "title": "Home", "text": "The only destination left was each other."},
			},
			content.SectionLogistics: map[string]any{
				"intro": "Gates open at four. Bring sunscreen.",
				"ceremony": map[string]any{
					"venue":   "Cap Estel Gardens",
					"address": "Èze, Côte d'Azur",
					"time":    "4:30 PM",
				},
				"reception": map[string]any{
					"venue":   "La Terrasse",
					"address": "Promenade des Anglais, Nice",
					"time":    "7:00 PM",
				},
				"dressCode": "resort",
			},
			content.SectionRSVP: map[string]any{
				"headline": "Reserve your seat",
				"deadline": "AUG 1, 2026",
				"note":     "Window or aisle, we'll save you a place.",
				"button":   "Check in",
			},
			content.SectionGallery: map[string]any{
				"headline": "Postcards",
				"images": []any{
					"https://assets.vowcraft.dev/the-voyager/gallery-01.jpg",
					"https://assets.vowcraft.dev/the-voyager/gallery-02.jpg",
					"https://assets.vowcraft.dev/the-voyager/gallery-03.jpg",
				},
			},
			content.SectionTheme: map[string]any{
				"global": map[string]any{
					"palette": map[string]any{
						"primary":    "#1f6f5c",
						"background": "#fbf7ef",
						"text":       "#23312d",
					},
					"fonts": map[string]any{
						"heading": "Fraunces",
						"body":    "Inter",
					},
				},
			},
		},
		Niches: []Niche{
			{
				Slug:  "destination-wedding",
				Label: "Destination Wedding",
				Overrides: content.Document{
					content.SectionHero: map[string]any{
						"tagline": "Pack light, love heavy",
					},
					content.SectionTheme: map[string]any{
						"global": map[string]any{
							"palette": map[string]any{
								"primary": "#c2571b",
							},
						},
					},
				},
			},
		},
	}
}

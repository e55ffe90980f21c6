package themes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vowcraft/vowcraft/content"
)

func TestRegistryBuiltins(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(WithBuiltins())

	list, err := registry.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 built-in themes, got %d", len(list))
	}

	definition, err := registry.Get(ctx, ThemeVintageVinyl)
	if err != nil {
		t.Fatalf("get vintage-vinyl: %v", err)
	}
	if _, ok := definition.Schema.Section(content.SectionHero); !ok {
		t.Fatalf("vintage-vinyl schema missing hero section")
	}

	if _, err := registry.Get(ctx, "brutalist-concrete"); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestRegistryDefaultContentIsCloned(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(WithBuiltins())

	first, err := registry.DefaultContent(ctx, ThemeVintageVinyl)
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	content.Section(first, content.SectionHero)["names"] = "Mutated"

	second, err := registry.DefaultContent(ctx, ThemeVintageVinyl)
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	if names := content.Section(second, content.SectionHero)["names"]; names != "June & Johnny" {
		t.Fatalf("default document leaked caller mutation: %v", names)
	}
}

func TestRegistryBuiltinDefaultsCoverSchemas(t *testing.T) {
	registry := NewRegistry()
	ctx := context.Background()
	for _, definition := range BuiltinDefinitions() {
		if err := registry.Register(ctx, definition); err != nil {
			t.Fatalf("register %s: %v", definition.ID, err)
		}
	}
}

func TestRegistryRegisterRejectsIncompleteDefaults(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry()

	definition := vintageVinylDefinition()
	delete(content.Section(definition.Defaults, content.SectionHero), "date")

	err := registry.Register(ctx, definition)
	if !errors.Is(err, ErrDefaultsIncomplete) {
		t.Fatalf("expected ErrDefaultsIncomplete, got %v", err)
	}
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(WithBuiltins())
	if err := registry.Register(ctx, vintageVinylDefinition()); !errors.Is(err, ErrThemeExists) {
		t.Fatalf("expected ErrThemeExists, got %v", err)
	}
}

func TestRegistryNicheLookup(t *testing.T) {
	ctx := context.Background()
	registry := NewRegistry(WithBuiltins())

	niche, err := registry.Niche(ctx, ThemeVintageVinyl, "rock-n-roll-wedding")
	if err != nil {
		t.Fatalf("niche: %v", err)
	}
	primary, ok := content.Lookup(niche.Overrides, content.SectionTheme, "global", "palette", "primary")
	if !ok || primary != "#e02e2e" {
		t.Fatalf("unexpected niche palette override: %v", primary)
	}

	if _, err := registry.Niche(ctx, ThemeVintageVinyl, "space-wedding"); !errors.Is(err, ErrNicheNotFound) {
		t.Fatalf("expected ErrNicheNotFound, got %v", err)
	}
}

func TestLoadNiches(t *testing.T) {
	fsys := fstest.MapFS{
		"niches/rockabilly.md": &fstest.MapFile{Data: []byte(`---
slug: rockabilly-wedding
label: Rockabilly Wedding
theme: vintage-vinyl
color: "#b3122f"
tagline: Shake, rattle and vow
---
A **jukebox** wedding for couples who never left 1956.
`)},
	}

	byTheme, err := LoadNiches(fsys, "niches")
	if err != nil {
		t.Fatalf("load niches: %v", err)
	}
	niches := byTheme[ThemeVintageVinyl]
	if len(niches) != 1 {
		t.Fatalf("expected 1 niche, got %d", len(niches))
	}
	niche := niches[0]
	if niche.Slug != "rockabilly-wedding" || niche.Label != "Rockabilly Wedding" {
		t.Fatalf("unexpected niche identity: %+v", niche)
	}
	primary, _ := content.Lookup(niche.Overrides, content.SectionTheme, "global", "palette", "primary")
	if primary != "#b3122f" {
		t.Fatalf("unexpected color override: %v", primary)
	}
	body, _ := content.Lookup(niche.Overrides, "marketing", "body")
	if text, _ := body.(string); !strings.Contains(text, "<strong>jukebox</strong>") {
		t.Fatalf("markdown body not rendered: %v", body)
	}
}

func TestLoadNichesRejectsMissingSlug(t *testing.T) {
	fsys := fstest.MapFS{
		"niches/broken.md": &fstest.MapFile{Data: []byte("---\ntheme: vintage-vinyl\n---\nbody\n")},
	}
	if _, err := LoadNiches(fsys, "niches"); !errors.Is(err, ErrNicheFileInvalid) {
		t.Fatalf("expected ErrNicheFileInvalid, got %v", err)
	}
}

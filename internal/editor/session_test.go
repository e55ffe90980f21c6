package editor

import (
	"errors"
	"testing"

	"github.com/vowcraft/vowcraft/content"
)

func TestNewSessionRequiresDefinition(t *testing.T) {
	if _, err := NewSession(nil, content.Document{}); !errors.Is(err, ErrDefinitionRequired) {
		t.Fatalf("expected ErrDefinitionRequired, got %v", err)
	}
}

func TestSessionIsolatesItsDocument(t *testing.T) {
	def := vintageVinyl(t)
	doc := content.Clone(def.Defaults)

	session, err := NewSession(def, doc)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := session.Apply(Change{Section: content.SectionHero, Field: "names", Value: "Alex & Jordan"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if got, _ := content.Lookup(session.Document(), "hero", "names"); got != "Alex & Jordan" {
		t.Fatalf("session document missing edit: %v", got)
	}
	if got, _ := content.Lookup(doc, "hero", "names"); got != "June & Johnny" {
		t.Fatalf("caller document mutated: %v", got)
	}
}

// Every field the schema declares should survive an edit-then-render cycle.
func TestSessionEditRenderRoundTrip(t *testing.T) {
	def := vintageVinyl(t)
	session, err := NewSession(def, def.Defaults)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	changes := []Change{
		{Section: content.SectionHero, Field: "tagline", Value: "Louder than love"},
		{Section: content.SectionStory, Index: 1, Field: "title", Value: "Track 2: Remastered"},
		{Section: content.SectionLogistics, Field: "intro", Value: "Doors at noon."},
		{Section: content.SectionLogistics, Group: "reception", Field: "time", Value: "7:30 PM"},
		{Section: content.SectionRSVP, Field: "button", Value: "Save my seat"},
		{Section: content.SectionGallery, Field: "headline", Value: "Proof sheet"},
		{Section: content.SectionTheme, Group: "global", Field: "palette.primary", Value: "#e02e2e"},
	}
	for _, change := range changes {
		if err := session.Apply(change); err != nil {
			t.Fatalf("Apply(%+v): %v", change, err)
		}
	}

	views := session.Render()

	hero := findSection(t, views, content.SectionHero)
	if findField(t, hero.Fields, "tagline").Value != "Louder than love" {
		t.Fatalf("hero edit did not round-trip")
	}

	story := findSection(t, views, content.SectionStory)
	events := findField(t, story.Fields, "events")
	if findField(t, events.Items[1], "title").Value != "Track 2: Remastered" {
		t.Fatalf("story edit did not round-trip")
	}
	if findField(t, events.Items[0], "title").Value != "Track 1: First Dance" {
		t.Fatalf("untouched story entry changed")
	}

	logistics := findSection(t, views, content.SectionLogistics)
	if findField(t, logistics.Fields, "intro").Value != "Doors at noon." {
		t.Fatalf("root-tier logistics edit did not round-trip")
	}
	reception := findField(t, logistics.Fields, "reception")
	if findField(t, reception.Fields, "time").Value != "7:30 PM" {
		t.Fatalf("grouped logistics edit did not round-trip")
	}
	if findField(t, reception.Fields, "venue").Value != "Little Lion Listening Bar" {
		t.Fatalf("sibling field of edited group changed")
	}

	rsvp := findSection(t, views, content.SectionRSVP)
	if findField(t, rsvp.Fields, "button").Value != "Save my seat" {
		t.Fatalf("rsvp edit did not round-trip")
	}

	gallery := findSection(t, views, content.SectionGallery)
	if findField(t, gallery.Fields, "headline").Value != "Proof sheet" {
		t.Fatalf("gallery edit did not round-trip")
	}

	theme := findSection(t, views, content.SectionTheme)
	global := findField(t, theme.Fields, "global")
	palette := findField(t, global.Fields, "palette")
	if findField(t, palette.Fields, "primary").Value != "#e02e2e" {
		t.Fatalf("theme palette edit did not round-trip")
	}
	if findField(t, palette.Fields, "text").Value != "#f5ead6" {
		t.Fatalf("sibling palette entry changed")
	}
}

func TestSessionGalleryImages(t *testing.T) {
	def := vintageVinyl(t)
	session, err := NewSession(def, def.Defaults)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if err := session.AppendImage("https://assets.vowcraft.dev/uploads/three.jpg"); err != nil {
		t.Fatalf("AppendImage: %v", err)
	}
	if err := session.ReplaceImage(0, "https://assets.vowcraft.dev/uploads/zero.jpg"); err != nil {
		t.Fatalf("ReplaceImage: %v", err)
	}
	if err := session.RemoveImage(1); err != nil {
		t.Fatalf("RemoveImage: %v", err)
	}

	images, _ := content.Lookup(session.Document(), "gallery", "images")
	list, ok := images.([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("gallery ops produced %v", images)
	}
	if list[0] != "https://assets.vowcraft.dev/uploads/zero.jpg" ||
		list[1] != "https://assets.vowcraft.dev/uploads/three.jpg" {
		t.Fatalf("gallery ops out of order: %v", list)
	}
}

func TestSessionClosedRejectsMutations(t *testing.T) {
	def := vintageVinyl(t)
	session, err := NewSession(def, def.Defaults)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	session.Close()

	if err := session.Apply(Change{Section: content.SectionHero, Field: "names", Value: "x"}); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("Apply after close: %v", err)
	}
	if err := session.AppendImage("x.jpg"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("AppendImage after close: %v", err)
	}
}

func TestSessionOnVoyagerLegacyStory(t *testing.T) {
	def := voyager(t)
	session, err := NewSession(def, def.Defaults)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if err := session.Apply(Change{Section: content.SectionStory, Index: 0, Field: "title", Value: "Porto"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// The bare-list shape persists across the edit.
	story, ok := session.Document()[content.SectionStory].([]any)
	if !ok {
		t.Fatalf("voyager story lost its bare-list shape: %T", session.Document()[content.SectionStory])
	}
	if story[0].(map[string]any)["title"] != "Porto" {
		t.Fatalf("story edit lost: %v", story[0])
	}
}

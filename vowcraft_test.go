package vowcraft_test

import (
	"context"
	"io/fs"
	"testing"

	vowcraft "github.com/vowcraft/vowcraft"
	"github.com/vowcraft/vowcraft/internal/di"
	"github.com/vowcraft/vowcraft/internal/editor"
	"github.com/vowcraft/vowcraft/internal/guests"
	"github.com/vowcraft/vowcraft/internal/sites"
)

type staticAuth struct {
	id string
}

func (a staticAuth) CurrentUserID(context.Context) (string, error) {
	return a.id, nil
}

func (a staticAuth) ValidateToken(context.Context, string) (string, error) {
	return a.id, nil
}

func newModule(t *testing.T) *vowcraft.Module {
	t.Helper()
	module, err := vowcraft.New(vowcraft.DefaultConfig(), di.WithAuth(staticAuth{id: "owner-1"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return module
}

func TestModuleSiteLifecycle(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	site, err := module.Sites().Create(ctx, sites.CreateWebsiteRequest{
		ThemeID: "vintage-vinyl",
		Names:   "Alex and Jordan",
		Date:    "2026-10-31",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if site.Slug != "alex-jordan" {
		t.Fatalf("unexpected slug %q", site.Slug)
	}

	session, err := module.OpenEditor(ctx, site.ID)
	if err != nil {
		t.Fatalf("OpenEditor: %v", err)
	}
	if err := session.Apply(editor.Change{Section: "hero", Field: "headline", Value: "Save the date"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	saved, err := module.Sites().Save(ctx, sites.SaveContentRequest{
		SiteID:  site.ID,
		Content: session.Document(),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	hero := saved.Content["hero"].(map[string]any)
	if hero["headline"] != "Save the date" {
		t.Fatalf("expected edited headline, got %v", hero["headline"])
	}

	published, err := module.Sites().Publish(ctx, site.ID)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if published.Status != sites.StatusProduction {
		t.Fatalf("expected production status got %q", published.Status)
	}
}

func TestModuleGuestFlow(t *testing.T) {
	module := newModule(t)
	ctx := context.Background()

	site, err := module.Sites().Create(ctx, sites.CreateWebsiteRequest{
		ThemeID: "vintage-vinyl",
		Names:   "Robin and Casey",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := module.Guests().Submit(ctx, guests.SubmitRSVPRequest{
		WeddingID: site.ID,
		Name:      "Sam Lee",
		Attending: true,
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	list, err := module.Guests().ListForWedding(ctx, site.ID)
	if err != nil {
		t.Fatalf("ListForWedding: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 guest got %d", len(list))
	}
}

func TestModuleHTTPAPI(t *testing.T) {
	module := newModule(t)
	if module.HTTPAPI() == nil {
		t.Fatalf("expected http api")
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(vowcraft.GetMigrationsFS(), "data/sql/migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	if len(entries) < 6 {
		t.Fatalf("expected up and down migrations for the three tables, got %d files", len(entries))
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	urlkit "github.com/goliatone/go-urlkit"

	vowcraft "github.com/vowcraft/vowcraft"
	"github.com/vowcraft/vowcraft/internal/di"
	"github.com/vowcraft/vowcraft/internal/editor"
	"github.com/vowcraft/vowcraft/internal/sites"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

// staticAuth pins every request to a single demo identity.
type staticAuth struct {
	id string
}

func (a staticAuth) CurrentUserID(context.Context) (string, error) {
	return a.id, nil
}

func (a staticAuth) ValidateToken(context.Context, string) (string, error) {
	return a.id, nil
}

var _ interfaces.AuthProvider = staticAuth{}

func main() {
	ctx := context.Background()

	cfg := vowcraft.DefaultConfig()
	cfg.Themes.DefaultTheme = "vintage-vinyl"
	cfg.Links.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "public",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"invite": "/w/:slug",
					"rsvp":   "/w/:slug/rsvp",
					"editor": "/editor/:id",
				},
			},
		},
	}

	module, err := vowcraft.New(cfg, di.WithAuth(staticAuth{id: "demo-user"}))
	if err != nil {
		log.Fatalf("initialise module: %v", err)
	}

	site, err := module.Sites().Create(ctx, sites.CreateWebsiteRequest{
		ThemeID:   cfg.Themes.DefaultTheme,
		NicheSlug: "rock-n-roll-wedding",
		Names:     "Alex and Jordan",
		Date:      "2026-10-31",
	})
	if err != nil {
		log.Fatalf("create site: %v", err)
	}
	fmt.Printf("created %s site %s at /%s\n", site.Status, site.ID, site.Slug)

	if links := module.Links(); links != nil {
		if invite, err := links.Invite(site.Slug); err == nil {
			fmt.Printf("invite url: %s\n", invite)
		}
	}

	session, err := module.OpenEditor(ctx, site.ID)
	if err != nil {
		log.Fatalf("open editor: %v", err)
	}
	if err := session.Apply(editor.Change{
		Section: "hero",
		Field:   "headline",
		Value:   "Save the date",
	}); err != nil {
		log.Fatalf("edit headline: %v", err)
	}
	if _, err := module.Sites().Save(ctx, sites.SaveContentRequest{
		SiteID:  site.ID,
		Content: session.Document(),
	}); err != nil {
		log.Fatalf("save content: %v", err)
	}
	session.Close()

	rendered, _ := json.MarshalIndent(site.Content["hero"], "", "  ")
	fmt.Printf("hero content:\n%s\n", rendered)

	mux := http.NewServeMux()
	if err := module.HTTPAPI().Register(mux); err != nil {
		log.Fatalf("register http api: %v", err)
	}
	fmt.Println("listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", mux))
}

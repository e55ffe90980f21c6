package di_test

import (
	"errors"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/vowcraft/vowcraft/internal/di"
	"github.com/vowcraft/vowcraft/internal/runtimeconfig"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

func TestNewContainerDefaults(t *testing.T) {
	c, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if c.SiteService() == nil {
		t.Fatalf("expected site service")
	}
	if c.GuestService() == nil {
		t.Fatalf("expected guest service")
	}
	if c.ThemeRegistry() == nil {
		t.Fatalf("expected theme registry")
	}
	if c.WebsiteRepository() == nil || c.RedemptionCodeRepository() == nil || c.GuestRepository() == nil {
		t.Fatalf("expected memory repositories")
	}
	if c.Links() != nil {
		t.Fatalf("expected no link builder without route config")
	}
	if c.Auth() == nil || c.Files() == nil {
		t.Fatalf("expected noop adapters")
	}
}

func TestNewContainerValidatesConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Redemption.DefaultMaxUses = -1

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrRedemptionMaxUsesInvalid) {
		t.Fatalf("expected ErrRedemptionMaxUsesInvalid, got %v", err)
	}
}

func TestGuestsFeatureDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Guests = false

	c, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if c.GuestService() != nil {
		t.Fatalf("expected no guest service when feature disabled")
	}
}

func TestContainerBuildsLinks(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
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

	c, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	links := c.Links()
	if links == nil {
		t.Fatalf("expected link builder")
	}
	url, err := links.Invite("alex-jordan")
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if url != "https://example.com/w/alex-jordan" {
		t.Fatalf("unexpected invite url %q", url)
	}
}

type recordingProvider struct {
	names []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return nil
}

func TestWithLoggerProviderWinsOverConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"

	rec := &recordingProvider{}
	c, err := di.NewContainer(cfg, di.WithLoggerProvider(rec))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if c.LoggerProvider() != rec {
		t.Fatalf("expected injected provider to win")
	}
	if len(rec.names) == 0 {
		t.Fatalf("expected module loggers to be requested")
	}
}

package vowcraft

import (
	"context"

	"github.com/google/uuid"

	"github.com/vowcraft/vowcraft/internal/di"
	"github.com/vowcraft/vowcraft/internal/editor"
	"github.com/vowcraft/vowcraft/internal/guests"
	vowhttp "github.com/vowcraft/vowcraft/internal/http"
	"github.com/vowcraft/vowcraft/internal/merge"
	"github.com/vowcraft/vowcraft/internal/sites"
	"github.com/vowcraft/vowcraft/internal/themes"
)

// SiteService exports the site lifecycle contract for consumers of the package.
type SiteService = sites.Service

// GuestService exports the RSVP collection contract.
type GuestService = guests.Service

// ThemeRegistry exports the theme registry contract.
type ThemeRegistry = themes.Registry

// ThemeDefinition exports the theme schema record.
type ThemeDefinition = themes.Definition

// Website exports the site record.
type Website = sites.Website

// Guest exports the RSVP record.
type Guest = guests.Guest

// EditorSession exports a live editing session over one site's content.
type EditorSession = editor.Session

// EditorChange exports one editor field mutation.
type EditorChange = editor.Change

// Links exports the shareable URL builder.
type Links = sites.Links

// Module is the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs the module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Sites returns the configured site lifecycle service.
func (m *Module) Sites() SiteService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.SiteService()
}

// Guests returns the configured RSVP service, nil when the feature is disabled.
func (m *Module) Guests() GuestService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.GuestService()
}

// Themes returns the configured theme registry.
func (m *Module) Themes() ThemeRegistry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ThemeRegistry()
}

// Merge returns the content merge engine.
func (m *Module) Merge() *merge.Engine {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MergeEngine()
}

// Links returns the shareable URL builder, nil when routes are not configured.
func (m *Module) Links() *Links {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Links()
}

// OpenEditor loads a site and starts an editing session against its theme.
func (m *Module) OpenEditor(ctx context.Context, siteID uuid.UUID) (*EditorSession, error) {
	site, err := m.Sites().Get(ctx, siteID)
	if err != nil {
		return nil, err
	}
	definition, err := m.Themes().Get(ctx, site.ThemeID)
	if err != nil {
		return nil, err
	}
	return editor.NewSession(definition, site.Content)
}

// HTTPAPI returns an HTTP adapter bound to the module's services.
func (m *Module) HTTPAPI() *vowhttp.API {
	if m == nil || m.container == nil {
		return nil
	}
	return vowhttp.NewAPI(
		vowhttp.WithSiteService(m.container.SiteService()),
		vowhttp.WithGuestService(m.container.GuestService()),
	)
}

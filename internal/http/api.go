package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/vowcraft/vowcraft/internal/guests"
	"github.com/vowcraft/vowcraft/internal/sites"
)

// API registers the public endpoints for redemption, site lifecycle, and RSVP
// collection. Host applications mount it on their own mux.
type API struct {
	basePath string
	sites    sites.Service
	guests   guests.Service
}

// Option mutates the API configuration.
type Option func(*API)

// NewAPI constructs an API instance.
func NewAPI(opts ...Option) *API {
	api := &API{
		basePath: "/api",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *API) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithSiteService wires the site lifecycle service.
func WithSiteService(service sites.Service) Option {
	return func(api *API) {
		if api != nil {
			api.sites = service
		}
	}
}

// WithGuestService wires the RSVP service.
func WithGuestService(service guests.Service) Option {
	return func(api *API) {
		if api != nil {
			api.guests = service
		}
	}
}

// Register attaches all routes to the provided mux.
func (api *API) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: api is nil")
	}

	base := joinPath(api.basePath, "")

	api.registerRedeemRoutes(mux, base)
	api.registerSiteRoutes(mux, base)
	api.registerGuestRoutes(mux, base)

	return nil
}

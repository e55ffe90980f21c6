package sites

import (
	"fmt"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"
)

// DefaultLinkGroup is the route group public site links resolve against.
const DefaultLinkGroup = "public"

// Link route names within the configured group.
const (
	RouteInvite = "invite"
	RouteRSVP   = "rsvp"
	RouteEditor = "editor"
)

// Links builds shareable URLs for a site from a go-urlkit route manager.
// The host application supplies the manager so links follow its domain and
// path layout; the builder only knows the route names.
type Links struct {
	manager *urlkit.RouteManager
	group   string
}

// NewLinks constructs a link builder. An empty group selects DefaultLinkGroup.
func NewLinks(manager *urlkit.RouteManager, group string) *Links {
	if group == "" {
		group = DefaultLinkGroup
	}
	return &Links{manager: manager, group: group}
}

// Invite returns the public invitation URL for a slug.
func (l *Links) Invite(slug string) (string, error) {
	return l.build(RouteInvite, map[string]any{"slug": slug})
}

// RSVP returns the RSVP form URL for a slug.
func (l *Links) RSVP(slug string) (string, error) {
	return l.build(RouteRSVP, map[string]any{"slug": slug})
}

// Editor returns the owner-facing editor URL for a site id.
func (l *Links) Editor(siteID uuid.UUID) (string, error) {
	return l.build(RouteEditor, map[string]any{"id": siteID.String()})
}

func (l *Links) build(route string, params map[string]any) (url string, err error) {
	if l.manager == nil {
		return "", fmt.Errorf("sites: route manager not configured")
	}
	// RouteManager panics on unknown groups and routes.
	defer func() {
		if recovered := recover(); recovered != nil {
			url = ""
			err = fmt.Errorf("sites: route %s.%s not configured: %v", l.group, route, recovered)
		}
	}()

	builder := l.manager.Group(l.group).Builder(route)
	for key, value := range params {
		builder.WithParam(key, value)
	}
	return builder.Build()
}

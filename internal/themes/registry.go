package themes

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/internal/validation"
)

var (
	ErrThemeIDRequired   = errors.New("themes: theme id required")
	ErrThemeExists       = errors.New("themes: theme already registered")
	ErrThemeNotFound     = errors.New("themes: theme not found")
	ErrSchemaRequired    = errors.New("themes: schema required")
	ErrDefaultsRequired  = errors.New("themes: default content required")
	ErrDefaultsIncomplete = errors.New("themes: default content does not cover schema")
	ErrNicheNotFound     = errors.New("themes: niche not found")
)

// Registry exposes theme lookup for the editor and lifecycle operations.
type Registry interface {
	Register(ctx context.Context, definition *Definition) error
	Get(ctx context.Context, themeID string) (*Definition, error)
	List(ctx context.Context) ([]*Definition, error)
	DefaultContent(ctx context.Context, themeID string) (content.Document, error)
	Niche(ctx context.Context, themeID, nicheSlug string) (*Niche, error)
}

// RegistryOption configures registry behaviour.
type RegistryOption func(*registry)

// WithBuiltins seeds the registry with the built-in theme definitions.
func WithBuiltins() RegistryOption {
	return func(r *registry) {
		for _, definition := range BuiltinDefinitions() {
			r.definitions[definition.ID] = definition
		}
	}
}

type registry struct {
	mu          sync.RWMutex
	definitions map[string]*Definition
}

// NewRegistry constructs an empty theme registry.
func NewRegistry(opts ...RegistryOption) Registry {
	r := &registry{definitions: make(map[string]*Definition)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *registry) Register(_ context.Context, definition *Definition) error {
	if definition == nil || strings.TrimSpace(definition.ID) == "" {
		return ErrThemeIDRequired
	}
	if len(definition.Schema) == 0 {
		return ErrSchemaRequired
	}
	if err := definition.Schema.Validate(); err != nil {
		return err
	}
	if len(definition.Defaults) == 0 {
		return ErrDefaultsRequired
	}
	if err := validation.ValidateDocument(definition.Schema, definition.Defaults); err != nil {
		return errors.Join(ErrDefaultsIncomplete, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[definition.ID]; exists {
		return ErrThemeExists
	}
	r.definitions[definition.ID] = definition.Clone()
	return nil
}

func (r *registry) Get(_ context.Context, themeID string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definition, ok := r.definitions[themeID]
	if !ok {
		return nil, ErrThemeNotFound
	}
	return definition.Clone(), nil
}

func (r *registry) List(_ context.Context) ([]*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Definition, 0, len(r.definitions))
	for _, definition := range r.definitions {
		out = append(out, definition.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *registry) DefaultContent(_ context.Context, themeID string) (content.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definition, ok := r.definitions[themeID]
	if !ok {
		return nil, ErrThemeNotFound
	}
	return content.Clone(definition.Defaults), nil
}

func (r *registry) Niche(_ context.Context, themeID, nicheSlug string) (*Niche, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definition, ok := r.definitions[themeID]
	if !ok {
		return nil, ErrThemeNotFound
	}
	for _, niche := range definition.Niches {
		if niche.Slug == nicheSlug {
			cloned := Niche{
				Slug:      niche.Slug,
				Label:     niche.Label,
				Overrides: content.Clone(niche.Overrides),
			}
			return &cloned, nil
		}
	}
	return nil, ErrNicheNotFound
}

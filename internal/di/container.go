package di

import (
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/vowcraft/vowcraft/internal/adapters/noop"
	"github.com/vowcraft/vowcraft/internal/guests"
	"github.com/vowcraft/vowcraft/internal/logging"
	"github.com/vowcraft/vowcraft/internal/logging/gologger"
	"github.com/vowcraft/vowcraft/internal/merge"
	"github.com/vowcraft/vowcraft/internal/runtimeconfig"
	"github.com/vowcraft/vowcraft/internal/sites"
	"github.com/vowcraft/vowcraft/internal/themes"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

// Container wires module dependencies. Memory repositories back every
// service until a bun.DB is supplied.
type Container struct {
	Config runtimeconfig.Config

	auth           interfaces.AuthProvider
	files          interfaces.FileStore
	loggerProvider interfaces.LoggerProvider

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer
	cacheTTL      time.Duration

	registry themes.Registry
	engine   *merge.Engine

	websiteRepo sites.WebsiteRepository
	codeRepo    sites.RedemptionCodeRepository
	guestRepo   guests.GuestRepository

	siteSvc  sites.Service
	guestSvc guests.Service
	links    *sites.Links
}

// Option overrides a container binding.
type Option func(*Container)

// WithAuth overrides the default (anonymous) auth provider.
func WithAuth(ap interfaces.AuthProvider) Option {
	return func(c *Container) {
		c.auth = ap
	}
}

// WithFileStore overrides the default no-op file store.
func WithFileStore(fs interfaces.FileStore) Option {
	return func(c *Container) {
		c.files = fs
	}
}

// WithBunDB switches repositories from memory to bun-backed storage.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache service.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithThemeRegistry overrides the theme registry binding.
func WithThemeRegistry(registry themes.Registry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// WithWebsiteRepository overrides the website repository binding.
func WithWebsiteRepository(repo sites.WebsiteRepository) Option {
	return func(c *Container) {
		c.websiteRepo = repo
	}
}

// WithRedemptionCodeRepository overrides the redemption code repository binding.
func WithRedemptionCodeRepository(repo sites.RedemptionCodeRepository) Option {
	return func(c *Container) {
		c.codeRepo = repo
	}
}

// WithGuestRepository overrides the guest repository binding.
func WithGuestRepository(repo guests.GuestRepository) Option {
	return func(c *Container) {
		c.guestRepo = repo
	}
}

// WithSiteService overrides the site service binding.
func WithSiteService(svc sites.Service) Option {
	return func(c *Container) {
		c.siteSvc = svc
	}
}

// WithGuestService overrides the guest service binding.
func WithGuestService(svc guests.Service) Option {
	return func(c *Container) {
		c.guestSvc = svc
	}
}

// NewContainer validates the configuration and resolves every binding.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:   cfg,
		auth:     noop.Auth(),
		files:    noop.Files(),
		cacheTTL: cfg.Cache.DefaultTTL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureServices()
	c.configureLinks()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}
	if c.Config.Logging.Provider == "gologger" {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled && !c.Config.Features.Cache {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB != nil {
		if c.websiteRepo == nil {
			c.websiteRepo = sites.NewBunWebsiteRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		}
		if c.codeRepo == nil {
			c.codeRepo = sites.NewBunRedemptionCodeRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		}
		if c.guestRepo == nil {
			c.guestRepo = guests.NewBunGuestRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		}
		return
	}

	if c.websiteRepo == nil {
		c.websiteRepo = sites.NewMemoryWebsiteRepository()
	}
	if c.codeRepo == nil {
		c.codeRepo = sites.NewMemoryRedemptionCodeRepository()
	}
	if c.guestRepo == nil {
		c.guestRepo = guests.NewMemoryGuestRepository()
	}
}

func (c *Container) configureServices() {
	if c.registry == nil {
		c.registry = themes.NewRegistry(themes.WithBuiltins())
	}
	if c.engine == nil {
		engineOpts := []merge.Option{}
		if c.loggerProvider != nil {
			engineOpts = append(engineOpts, merge.WithLogger(logging.MergeLogger(c.loggerProvider)))
		}
		c.engine = merge.NewEngine(c.registry, engineOpts...)
	}

	if c.siteSvc == nil {
		siteOpts := []sites.ServiceOption{}
		if c.loggerProvider != nil {
			siteOpts = append(siteOpts, sites.WithLogger(logging.SitesLogger(c.loggerProvider)))
		}
		c.siteSvc = sites.NewService(c.websiteRepo, c.codeRepo, c.registry, c.engine, c.auth, siteOpts...)
	}

	if c.guestSvc == nil && c.Config.Features.Guests {
		guestOpts := []guests.ServiceOption{}
		if c.loggerProvider != nil {
			guestOpts = append(guestOpts, guests.WithLogger(logging.GuestsLogger(c.loggerProvider)))
		}
		c.guestSvc = guests.NewService(c.guestRepo, sites.NewOwnerResolver(c.websiteRepo), c.auth, guestOpts...)
	}
}

func (c *Container) configureLinks() {
	if c.links != nil || c.Config.Links.RouteConfig == nil {
		return
	}
	manager := urlkit.NewRouteManager(c.Config.Links.RouteConfig)
	c.links = sites.NewLinks(manager, c.Config.Links.Group)
}

// Auth exposes the configured auth provider.
func (c *Container) Auth() interfaces.AuthProvider {
	return c.auth
}

// Files exposes the configured file store.
func (c *Container) Files() interfaces.FileStore {
	return c.files
}

// LoggerProvider exposes the configured logging provider, which may be nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// ThemeRegistry exposes the configured theme registry.
func (c *Container) ThemeRegistry() themes.Registry {
	return c.registry
}

// MergeEngine exposes the configured content merge engine.
func (c *Container) MergeEngine() *merge.Engine {
	return c.engine
}

// WebsiteRepository exposes the website repository binding.
func (c *Container) WebsiteRepository() sites.WebsiteRepository {
	return c.websiteRepo
}

// RedemptionCodeRepository exposes the redemption code repository binding.
func (c *Container) RedemptionCodeRepository() sites.RedemptionCodeRepository {
	return c.codeRepo
}

// GuestRepository exposes the guest repository binding.
func (c *Container) GuestRepository() guests.GuestRepository {
	return c.guestRepo
}

// SiteService returns the configured site lifecycle service.
func (c *Container) SiteService() sites.Service {
	return c.siteSvc
}

// GuestService returns the configured RSVP service, nil when the guests
// feature is disabled.
func (c *Container) GuestService() guests.Service {
	return c.guestSvc
}

// Links returns the configured link builder, nil when routes are not set.
func (c *Container) Links() *sites.Links {
	return c.links
}

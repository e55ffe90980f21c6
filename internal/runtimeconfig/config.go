package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	urlkit "github.com/goliatone/go-urlkit"
)

var ErrDefaultThemeRequiresThemes = errors.New("vowcraft config: default theme requires the themes feature to be enabled")
var ErrRedemptionMaxUsesInvalid = errors.New("vowcraft config: redemption default max uses must be zero or positive")
var ErrCacheTTLInvalid = errors.New("vowcraft config: cache ttl must be zero or positive")
var ErrLoggingProviderRequired = errors.New("vowcraft config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("vowcraft config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("vowcraft config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("vowcraft config: logging format is invalid")
var ErrLinksGroupRequired = errors.New("vowcraft config: links group is required when routes are configured")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled    bool
	Storage    StorageConfig
	Cache      CacheConfig
	Themes     ThemeConfig
	Redemption RedemptionConfig
	Links      LinksConfig
	Features   Features
	Logging    LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures repository cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// ThemeConfig captures configuration for the theme registry.
type ThemeConfig struct {
	DefaultTheme string
	NicheDir     string
}

// RedemptionConfig captures code redemption behaviour.
type RedemptionConfig struct {
	DefaultMaxUses int
}

// LinksConfig captures routing configuration for shareable site URLs.
type LinksConfig struct {
	RouteConfig *urlkit.Config
	Group       string
}

// Features toggles module functionality.
type Features struct {
	Themes bool
	Cache  bool
	Guests bool
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for an embedded deployment.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "bun",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Themes: ThemeConfig{
			DefaultTheme: "vintage-vinyl",
		},
		Redemption: RedemptionConfig{},
		Links: LinksConfig{
			Group: "public",
		},
		Features: Features{
			Themes: true,
			Guests: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Overlay merges a partial user config on top of defaults. Zero-valued user
// fields keep the default; anything set wins.
func Overlay(user Config) (Config, error) {
	cfg := DefaultConfig()
	if err := mergo.Merge(&cfg, user, mergo.WithOverride); err != nil {
		return Config{}, fmt.Errorf("vowcraft config: overlay: %w", err)
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if !cfg.Features.Themes {
		if strings.TrimSpace(cfg.Themes.DefaultTheme) != "" {
			return ErrDefaultThemeRequiresThemes
		}
	}
	if cfg.Redemption.DefaultMaxUses < 0 {
		return ErrRedemptionMaxUsesInvalid
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Links.RouteConfig != nil {
		if strings.TrimSpace(cfg.Links.Group) == "" {
			return ErrLinksGroupRequired
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

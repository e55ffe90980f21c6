package vowcraft

import "github.com/vowcraft/vowcraft/internal/runtimeconfig"

var (
	ErrDefaultThemeRequiresThemes = runtimeconfig.ErrDefaultThemeRequiresThemes
	ErrRedemptionMaxUsesInvalid   = runtimeconfig.ErrRedemptionMaxUsesInvalid
	ErrCacheTTLInvalid            = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
	ErrLinksGroupRequired         = runtimeconfig.ErrLinksGroupRequired
)

type (
	Config           = runtimeconfig.Config
	StorageConfig    = runtimeconfig.StorageConfig
	CacheConfig      = runtimeconfig.CacheConfig
	ThemeConfig      = runtimeconfig.ThemeConfig
	RedemptionConfig = runtimeconfig.RedemptionConfig
	LinksConfig      = runtimeconfig.LinksConfig
	Features         = runtimeconfig.Features
	LoggingConfig    = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// OverlayConfig merges a partial user config onto the defaults.
func OverlayConfig(user Config) (Config, error) {
	return runtimeconfig.Overlay(user)
}

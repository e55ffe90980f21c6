package logging

import (
	"context"

	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

const (
	rootModule   = "vowcraft"
	themesModule = "vowcraft.themes"
	mergeModule  = "vowcraft.merge"
	editorModule = "vowcraft.editor"
	sitesModule  = "vowcraft.sites"
	guestsModule = "vowcraft.guests"
	httpModule   = "vowcraft.http"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ThemesLogger returns the logger namespace reserved for the theme registry.
func ThemesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, themesModule)
}

// MergeLogger returns the logger namespace reserved for the merge engine.
func MergeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, mergeModule)
}

// EditorLogger returns the logger namespace reserved for editor sessions.
func EditorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, editorModule)
}

// SitesLogger returns the logger namespace reserved for site lifecycle operations.
func SitesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sitesModule)
}

// GuestsLogger returns the logger namespace reserved for RSVP collection.
func GuestsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, guestsModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP surface.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

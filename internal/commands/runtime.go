package commands

import (
	"context"
	"strings"
	"time"

	"github.com/vowcraft/vowcraft/internal/logging"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

const commandModuleRoot = "vowcraft.commands"

// DefaultCommandTimeout is the handler timeout applied when none is configured.
const DefaultCommandTimeout = 30 * time.Second

// EnsureContext returns a non-nil context, falling back to context.Background when nil.
func EnsureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// EnsureLogger returns a usable logger, defaulting to a no-op logger when nil.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}

// CommandLogger returns a module-scoped logger for command handlers with
// consistent structured fields attached.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}

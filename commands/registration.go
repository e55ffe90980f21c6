package commands

import (
	"errors"

	corecommands "github.com/vowcraft/vowcraft/internal/commands"
	sitescmd "github.com/vowcraft/vowcraft/internal/commands/sites"
	"github.com/vowcraft/vowcraft/internal/di"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider

	// SiteCallbacks receive command results, since handler execution only
	// reports errors.
	OnSiteCreated  sitescmd.CreateSiteCallbacks
	OnCodeRedeemed sitescmd.RedeemCodeCallbacks
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterContainerCommands builds the command handlers exposed by the provided
// container and optionally registers them with registry/dispatcher integrations.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	if service := container.SiteService(); service != nil {
		logger := corecommands.CommandLogger(provider, "sites")
		register(sitescmd.NewCreateSiteHandler(service, logger, opts.OnSiteCreated))
		register(sitescmd.NewRedeemCodeHandler(service, logger, opts.OnCodeRedeemed))
		register(sitescmd.NewPublishSiteHandler(service, logger))
	}

	return result, errs
}

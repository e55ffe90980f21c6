package sitescmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/vowcraft/vowcraft/internal/commands"
	"github.com/vowcraft/vowcraft/internal/logging"
	"github.com/vowcraft/vowcraft/internal/sites"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

const publishSiteMessageType = "vowcraft.sites.publish"

// PublishSiteCommand moves a demo site to production.
type PublishSiteCommand struct {
	SiteID uuid.UUID `json:"site_id"`
}

// Type implements command.Message.
func (PublishSiteCommand) Type() string { return publishSiteMessageType }

// Validate ensures the command captures the required identifier.
func (m PublishSiteCommand) Validate() error {
	errs := validation.Errors{}
	if m.SiteID == uuid.Nil {
		errs["site_id"] = validation.NewError("vowcraft.sites.publish.site_id_required", "site_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishSiteHandler publishes sites via the lifecycle service.
type PublishSiteHandler struct {
	inner *commands.Handler[PublishSiteCommand]
}

// NewPublishSiteHandler constructs a handler wired to the provided site service.
func NewPublishSiteHandler(service sites.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishSiteCommand]) *PublishSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PublishSiteCommand) error {
		_, err := service.Publish(ctx, msg.SiteID)
		return err
	}

	handlerOpts := []commands.HandlerOption[PublishSiteCommand]{
		commands.WithLogger[PublishSiteCommand](baseLogger),
		commands.WithOperation[PublishSiteCommand]("sites.publish"),
		commands.WithMessageFields(func(msg PublishSiteCommand) map[string]any {
			fields := map[string]any{}
			if msg.SiteID != uuid.Nil {
				fields["site_id"] = msg.SiteID
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute conforms to command.Commander.
func (h *PublishSiteHandler) Execute(ctx context.Context, msg PublishSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

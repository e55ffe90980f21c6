package sitescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vowcraft/vowcraft/internal/commands"
	"github.com/vowcraft/vowcraft/internal/logging"
	"github.com/vowcraft/vowcraft/internal/sites"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

const createSiteMessageType = "vowcraft.sites.create"

// CreateSiteCommand requests creation of a fresh demo site.
type CreateSiteCommand struct {
	ThemeID   string         `json:"theme_id"`
	NicheSlug string         `json:"niche_slug,omitempty"`
	Preset    map[string]any `json:"preset,omitempty"`
	Names     string         `json:"names"`
	Date      string         `json:"date,omitempty"`
}

// Type implements command.Message.
func (CreateSiteCommand) Type() string { return createSiteMessageType }

// Validate ensures the command captures the required inputs before reaching handlers.
func (m CreateSiteCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ThemeID) == "" {
		errs["theme_id"] = validation.NewError("vowcraft.sites.create.theme_required", "theme_id is required")
	}
	if strings.TrimSpace(m.Names) == "" {
		errs["names"] = validation.NewError("vowcraft.sites.create.names_required", "names is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateSiteHandler creates sites via the lifecycle service using the shared
// command handler foundation. The created record is delivered through the
// optional OnCreated callback, since command execution itself only reports
// success or failure.
type CreateSiteHandler struct {
	inner *commands.Handler[CreateSiteCommand]
}

// CreateSiteCallbacks receives side outputs of command execution.
type CreateSiteCallbacks struct {
	OnCreated func(ctx context.Context, site *sites.Website)
}

// NewCreateSiteHandler constructs a handler wired to the provided site service.
func NewCreateSiteHandler(service sites.Service, logger interfaces.Logger, callbacks CreateSiteCallbacks, opts ...commands.HandlerOption[CreateSiteCommand]) *CreateSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CreateSiteCommand) error {
		created, err := service.Create(ctx, sites.CreateWebsiteRequest{
			ThemeID:   msg.ThemeID,
			NicheSlug: msg.NicheSlug,
			Preset:    msg.Preset,
			Names:     msg.Names,
			Date:      msg.Date,
		})
		if err != nil {
			return err
		}
		if callbacks.OnCreated != nil {
			callbacks.OnCreated(ctx, created)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CreateSiteCommand]{
		commands.WithLogger[CreateSiteCommand](baseLogger),
		commands.WithOperation[CreateSiteCommand]("sites.create"),
		commands.WithMessageFields(func(msg CreateSiteCommand) map[string]any {
			fields := map[string]any{}
			if trimmed := strings.TrimSpace(msg.ThemeID); trimmed != "" {
				fields["theme"] = trimmed
			}
			if trimmed := strings.TrimSpace(msg.NicheSlug); trimmed != "" {
				fields["niche"] = trimmed
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute conforms to command.Commander.
func (h *CreateSiteHandler) Execute(ctx context.Context, msg CreateSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

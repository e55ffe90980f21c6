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

const redeemCodeMessageType = "vowcraft.sites.redeem"

// RedeemCodeCommand exchanges a redemption code for a production site.
type RedeemCodeCommand struct {
	Code  string `json:"code"`
	Names string `json:"names"`
	Date  string `json:"date,omitempty"`
}

// Type implements command.Message.
func (RedeemCodeCommand) Type() string { return redeemCodeMessageType }

// Validate ensures the command captures the required inputs before reaching handlers.
func (m RedeemCodeCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Code) == "" {
		errs["code"] = validation.NewError("vowcraft.sites.redeem.code_required", "code is required")
	}
	if strings.TrimSpace(m.Names) == "" {
		errs["names"] = validation.NewError("vowcraft.sites.redeem.names_required", "names is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RedeemCodeHandler redeems codes via the lifecycle service.
type RedeemCodeHandler struct {
	inner *commands.Handler[RedeemCodeCommand]
}

// RedeemCodeCallbacks receives side outputs of command execution.
type RedeemCodeCallbacks struct {
	OnRedeemed func(ctx context.Context, site *sites.Website)
}

// NewRedeemCodeHandler constructs a handler wired to the provided site service.
func NewRedeemCodeHandler(service sites.Service, logger interfaces.Logger, callbacks RedeemCodeCallbacks, opts ...commands.HandlerOption[RedeemCodeCommand]) *RedeemCodeHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RedeemCodeCommand) error {
		redeemed, err := service.Redeem(ctx, sites.RedeemRequest{
			Code:  msg.Code,
			Names: msg.Names,
			Date:  msg.Date,
		})
		if err != nil {
			return err
		}
		if callbacks.OnRedeemed != nil {
			callbacks.OnRedeemed(ctx, redeemed)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[RedeemCodeCommand]{
		commands.WithLogger[RedeemCodeCommand](baseLogger),
		commands.WithOperation[RedeemCodeCommand]("sites.redeem"),
		commands.WithMessageFields(func(msg RedeemCodeCommand) map[string]any {
			fields := map[string]any{}
			if trimmed := strings.TrimSpace(msg.Code); trimmed != "" {
				fields["code"] = trimmed
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RedeemCodeHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute conforms to command.Commander.
func (h *RedeemCodeHandler) Execute(ctx context.Context, msg RedeemCodeCommand) error {
	return h.inner.Execute(ctx, msg)
}

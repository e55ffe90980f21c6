package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
	"github.com/vowcraft/vowcraft/internal/guests"
	"github.com/vowcraft/vowcraft/internal/sites"
)

const (
	commandValidationCode   = "COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "COMMAND_EXECUTION_FAILED"

	siteNotFoundCode    = "SITE_NOT_FOUND"
	siteNotOwnedCode    = "SITE_NOT_OWNED"
	codeUnavailableCode = "CODE_UNAVAILABLE"
	alreadyRedeemedCode = "CODE_ALREADY_REDEEMED"
	slugConflictCode    = "SLUG_CONFLICT"
	unauthenticatedCode = "AUTH_REQUIRED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(commandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(commandContextCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(commandContextErrorCode)
	}
}

// wrapExecuteError classifies the site lifecycle errors before falling back
// to the generic command category, so dispatcher middleware can route on
// category and text code instead of unwrapping sentinels.
func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}

	var siteNotFound *sites.NotFoundError
	var guestNotFound *guests.NotFoundError
	var duplicate *sites.DuplicateRedemptionError
	switch {
	case errors.As(err, &siteNotFound), errors.As(err, &guestNotFound):
		return goerrors.Wrap(err, goerrors.CategoryNotFound, "record not found").
			WithTextCode(siteNotFoundCode)
	case errors.As(err, &duplicate):
		return goerrors.Wrap(err, goerrors.CategoryConflict, "code already redeemed").
			WithTextCode(alreadyRedeemedCode)
	case errors.Is(err, sites.ErrUnauthenticated), errors.Is(err, guests.ErrUnauthenticated):
		return goerrors.Wrap(err, goerrors.CategoryAuth, "authentication required").
			WithTextCode(unauthenticatedCode)
	case errors.Is(err, sites.ErrOwnershipMismatch), errors.Is(err, guests.ErrNotOwner):
		return goerrors.Wrap(err, goerrors.CategoryAuthz, "caller does not own this site").
			WithTextCode(siteNotOwnedCode)
	case errors.Is(err, sites.ErrCodeInactive), errors.Is(err, sites.ErrCodeExhausted):
		return goerrors.Wrap(err, goerrors.CategoryConflict, "redemption code unavailable").
			WithTextCode(codeUnavailableCode)
	case errors.Is(err, sites.ErrSlugExists):
		return goerrors.Wrap(err, goerrors.CategoryConflict, "slug already exists").
			WithTextCode(slugConflictCode)
	}

	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(commandExecuteFailed)
}

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/vowcraft/vowcraft/internal/guests"
	"github.com/vowcraft/vowcraft/internal/sites"
)

type errorResponse struct {
	Error        string            `json:"error"`
	Message      string            `json:"message,omitempty"`
	ExistingSlug string            `json:"existing_slug,omitempty"`
	Issues       map[string]string `json:"issues,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var duplicate *sites.DuplicateRedemptionError
	if errors.As(err, &duplicate) {
		return http.StatusConflict, errorResponse{
			Error:        "already_redeemed",
			Message:      duplicate.Error(),
			ExistingSlug: duplicate.ExistingSlug,
		}
	}

	var siteNotFound *sites.NotFoundError
	if errors.As(err, &siteNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: siteNotFound.Error(),
		}
	}

	var guestNotFound *guests.NotFoundError
	if errors.As(err, &guestNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: guestNotFound.Error(),
		}
	}

	if errors.Is(err, sites.ErrUnauthenticated) || errors.Is(err, guests.ErrUnauthenticated) {
		return http.StatusUnauthorized, errorResponse{
			Error:   "unauthorized",
			Message: err.Error(),
		}
	}

	if errors.Is(err, sites.ErrOwnershipMismatch) || errors.Is(err, guests.ErrNotOwner) {
		return http.StatusForbidden, errorResponse{
			Error:   "forbidden",
			Message: err.Error(),
		}
	}

	if errors.Is(err, sites.ErrCodeInactive) || errors.Is(err, sites.ErrCodeExhausted) {
		return http.StatusGone, errorResponse{
			Error:   "code_unavailable",
			Message: err.Error(),
		}
	}

	if errors.Is(err, sites.ErrSlugExists) {
		return http.StatusConflict, errorResponse{
			Error:   "conflict",
			Message: err.Error(),
		}
	}

	var issues validation.Errors
	if errors.As(err, &issues) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
			Issues:  validationIssues(issues),
		}
	}

	if errors.Is(err, sites.ErrCodeRequired) ||
		errors.Is(err, sites.ErrNamesRequired) ||
		errors.Is(err, sites.ErrThemeRequired) ||
		errors.Is(err, sites.ErrSlugInvalid) ||
		errors.Is(err, sites.ErrSiteIDRequired) ||
		errors.Is(err, sites.ErrContentRequired) ||
		errors.Is(err, guests.ErrWeddingRequired) {
		return http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

func validationIssues(errs validation.Errors) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	issues := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		issues[field] = fieldErr.Error()
	}
	return issues
}

func parseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.New("uuid required")
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, err
	}
	return parsed, nil
}

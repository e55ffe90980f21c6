package sites

import (
	"errors"
	"fmt"
)

var (
	ErrNamesRequired     = errors.New("sites: display names are required")
	ErrThemeRequired     = errors.New("sites: theme id is required")
	ErrSlugInvalid       = errors.New("sites: derived slug contains invalid characters")
	ErrSlugExists        = errors.New("sites: slug already exists")
	ErrSiteIDRequired    = errors.New("sites: site id is required")
	ErrContentRequired   = errors.New("sites: content document is required")
	ErrCodeRequired      = errors.New("sites: redemption code is required")
	ErrCodeInactive      = errors.New("sites: redemption code is inactive")
	ErrCodeExhausted     = errors.New("sites: redemption code has no uses left")
	ErrUnauthenticated   = errors.New("sites: authentication required")
	ErrOwnershipMismatch = errors.New("sites: caller does not own this site")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// DuplicateRedemptionError signals that the caller already redeemed the
// code. ExistingSlug lets the surface redirect to the earlier site instead
// of failing uselessly.
type DuplicateRedemptionError struct {
	Code         string
	ExistingSlug string
}

func (e *DuplicateRedemptionError) Error() string {
	return fmt.Sprintf("sites: code %q already redeemed (existing site %q)", e.Code, e.ExistingSlug)
}

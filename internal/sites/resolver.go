package sites

import (
	"context"

	"github.com/google/uuid"
)

// OwnerResolver answers "who owns this wedding site" for collaborators that
// only hold a site id, such as the RSVP service.
type OwnerResolver struct {
	websites WebsiteRepository
}

// NewOwnerResolver wraps a website repository in the resolver contract.
func NewOwnerResolver(websites WebsiteRepository) *OwnerResolver {
	return &OwnerResolver{websites: websites}
}

// OwnerOf returns the owner identity for the given site id.
func (r *OwnerResolver) OwnerOf(ctx context.Context, weddingID uuid.UUID) (string, error) {
	if r == nil || r.websites == nil {
		return "", &NotFoundError{Resource: "website", Key: weddingID.String()}
	}
	record, err := r.websites.GetByID(ctx, weddingID)
	if err != nil {
		return "", err
	}
	return record.OwnerID, nil
}

package interfaces

import "context"

// AuthProvider is the session collaborator: it resolves the authenticated
// caller for a request context. Identities are opaque strings compared for
// equality against a site record's owner.
type AuthProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
	ValidateToken(ctx context.Context, token string) (string, error)
}

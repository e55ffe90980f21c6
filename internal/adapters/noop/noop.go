package noop

import (
	"context"
	"errors"
	"io"

	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

// ErrAnonymous is returned by the no-op auth adapter for every identity
// lookup, so callers behave as if no session exists.
var ErrAnonymous = errors.New("noop: no authenticated user")

// Auth returns an interfaces.AuthProvider with no backing session store.
func Auth() interfaces.AuthProvider {
	return authAdapter{}
}

type authAdapter struct{}

func (authAdapter) CurrentUserID(context.Context) (string, error) {
	return "", ErrAnonymous
}

func (authAdapter) ValidateToken(context.Context, string) (string, error) {
	return "", ErrAnonymous
}

// Files returns an interfaces.FileStore that swallows uploads.
func Files() interfaces.FileStore {
	return fileAdapter{}
}

type fileAdapter struct{}

func (fileAdapter) Upload(_ context.Context, name string, _ string, body io.Reader) (string, error) {
	if body != nil {
		_, _ = io.Copy(io.Discard, body)
	}
	return "noop://" + name, nil
}

func (fileAdapter) Remove(context.Context, string) error {
	return nil
}

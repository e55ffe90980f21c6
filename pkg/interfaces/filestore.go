package interfaces

import (
	"context"
	"io"
)

// FileStore is the binary storage collaborator: it accepts a blob and
// returns a durable public URL. The builder never inspects or transforms
// the blob itself.
type FileStore interface {
	Upload(ctx context.Context, name string, contentType string, body io.Reader) (string, error)
	Remove(ctx context.Context, url string) error
}

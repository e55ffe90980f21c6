package noop_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vowcraft/vowcraft/internal/adapters/noop"
)

func TestAuthIsAlwaysAnonymous(t *testing.T) {
	auth := noop.Auth()

	if _, err := auth.CurrentUserID(context.Background()); !errors.Is(err, noop.ErrAnonymous) {
		t.Fatalf("expected ErrAnonymous, got %v", err)
	}
	if _, err := auth.ValidateToken(context.Background(), "token"); !errors.Is(err, noop.ErrAnonymous) {
		t.Fatalf("expected ErrAnonymous, got %v", err)
	}
}

func TestFilesSwallowsUploads(t *testing.T) {
	files := noop.Files()

	url, err := files.Upload(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "noop://photo.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
	if err := files.Remove(context.Background(), url); err != nil {
		t.Fatalf("Remove: %v", err)
	}
}

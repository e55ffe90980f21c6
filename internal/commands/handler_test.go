package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/vowcraft/vowcraft/internal/guests"
	"github.com/vowcraft/vowcraft/internal/sites"
)

type testMessage struct{}

func (testMessage) Type() string { return "vowcraft.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "vowcraft.test.invalid" }

func (invalidMessage) Validate() error {
	return errors.New("invalid")
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerWrapsExecutionErrors(t *testing.T) {
	boom := errors.New("boom")
	h := NewHandler[testMessage](func(context.Context, testMessage) error {
		return boom
	})

	err := h.Execute(context.Background(), testMessage{})
	if !errors.Is(err, boom) {
		t.Fatalf("wrapped error lost its cause: %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerClassifiesDomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		category goerrors.Category
	}{
		{"site not found", &sites.NotFoundError{Resource: "website", Key: "missing"}, goerrors.CategoryNotFound},
		{"guest wedding not found", &guests.NotFoundError{Resource: "wedding", Key: "missing"}, goerrors.CategoryNotFound},
		{"duplicate redemption", &sites.DuplicateRedemptionError{Code: "GOLD", ExistingSlug: "alex-jordan"}, goerrors.CategoryConflict},
		{"unauthenticated", sites.ErrUnauthenticated, goerrors.CategoryAuth},
		{"ownership mismatch", sites.ErrOwnershipMismatch, goerrors.CategoryAuthz},
		{"code exhausted", sites.ErrCodeExhausted, goerrors.CategoryConflict},
		{"slug conflict", sites.ErrSlugExists, goerrors.CategoryConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler[testMessage](func(context.Context, testMessage) error {
				return tc.err
			})

			err := h.Execute(context.Background(), testMessage{})
			if !errors.Is(err, tc.err) {
				t.Fatalf("wrapped error lost its cause: %v", err)
			}
			if !goerrors.IsCategory(err, tc.category) {
				t.Fatalf("expected %s category, got %v", tc.category, err)
			}
		})
	}
}

func TestHandlerHonorsContextCancellation(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return nil
	}, WithTimeout[testMessage](time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

package guests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/vowcraft/vowcraft/internal/logging"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

// Service exposes RSVP collection: public submissions and the owner-gated
// guest list.
type Service interface {
	Submit(ctx context.Context, req SubmitRSVPRequest) (*Guest, error)
	ListForWedding(ctx context.Context, weddingID uuid.UUID) ([]*Guest, error)
}

// SubmitRSVPRequest is one RSVP form post.
type SubmitRSVPRequest struct {
	WeddingID uuid.UUID `json:"wedding_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Attending bool      `json:"attending"`
	PlusOnes  int       `json:"plus_ones"`
	Message   string    `json:"message"`
}

// Validate checks the submission payload.
func (r SubmitRSVPRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WeddingID, validation.By(func(any) error {
			if r.WeddingID == uuid.Nil {
				return validation.NewError("guests.wedding_id_required", "wedding id is required")
			}
			return nil
		})),
		validation.Field(&r.Name, validation.Required.Error("guest name is required"), validation.Length(1, 120)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.PlusOnes, validation.Min(0), validation.Max(10)),
		validation.Field(&r.Message, validation.Length(0, 2000)),
	)
}

var (
	ErrWeddingRequired = errors.New("guests: wedding id is required")
	ErrUnauthenticated = errors.New("guests: authentication required")
	ErrNotOwner        = errors.New("guests: caller does not own this wedding")
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

// GuestRepository abstracts storage for RSVP rows.
type GuestRepository interface {
	Create(ctx context.Context, record *Guest) (*Guest, error)
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*Guest, error)
}

// WeddingResolver answers ownership questions about a wedding site. The
// sites service satisfies this.
type WeddingResolver interface {
	OwnerOf(ctx context.Context, weddingID uuid.UUID) (string, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator mints guest record identifiers.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides guest id generation.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger injects the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	guests   GuestRepository
	weddings WeddingResolver
	auth     interfaces.AuthProvider
	now      func() time.Time
	id       IDGenerator
	logger   interfaces.Logger
}

// NewService constructs the RSVP service.
func NewService(guests GuestRepository, weddings WeddingResolver, auth interfaces.AuthProvider, opts ...ServiceOption) Service {
	s := &service{
		guests:   guests,
		weddings: weddings,
		auth:     auth,
		now:      time.Now,
		id:       uuid.New,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit records one RSVP. Submissions are public: guests are not
// authenticated, the wedding only has to exist.
func (s *service) Submit(ctx context.Context, req SubmitRSVPRequest) (*Guest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.weddings.OwnerOf(ctx, req.WeddingID); err != nil {
		return nil, err
	}

	record := &Guest{
		ID:        s.id(),
		WeddingID: req.WeddingID,
		Name:      strings.TrimSpace(req.Name),
		Attending: req.Attending,
		PlusOnes:  req.PlusOnes,
		CreatedAt: s.now(),
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		record.Email = &email
	}
	if message := strings.TrimSpace(req.Message); message != "" {
		record.Message = &message
	}

	created, err := s.guests.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("guests.rsvp_received",
		"wedding_id", req.WeddingID.String(),
		"attending", req.Attending,
	)
	return created, nil
}

// ListForWedding returns a wedding's guest list. Only the site owner may
// read it.
func (s *service) ListForWedding(ctx context.Context, weddingID uuid.UUID) ([]*Guest, error) {
	if weddingID == uuid.Nil {
		return nil, ErrWeddingRequired
	}
	caller, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	owner, err := s.weddings.OwnerOf(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if owner != caller {
		return nil, ErrNotOwner
	}
	return s.guests.ListByWedding(ctx, weddingID)
}

package sites

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/internal/editor"
	"github.com/vowcraft/vowcraft/internal/identity"
	"github.com/vowcraft/vowcraft/internal/logging"
	"github.com/vowcraft/vowcraft/internal/merge"
	"github.com/vowcraft/vowcraft/internal/themes"
	"github.com/vowcraft/vowcraft/pkg/interfaces"
)

// Service exposes the site lifecycle use-cases: creation, code redemption,
// editing saves, and publishing.
type Service interface {
	Create(ctx context.Context, req CreateWebsiteRequest) (*Website, error)
	CheckCode(ctx context.Context, code string) (*CodeStatus, error)
	Redeem(ctx context.Context, req RedeemRequest) (*Website, error)
	Get(ctx context.Context, id uuid.UUID) (*Website, error)
	GetBySlug(ctx context.Context, slug string) (*Website, error)
	ListByOwner(ctx context.Context) ([]*Website, error)
	Save(ctx context.Context, req SaveContentRequest) (*Website, error)
	Publish(ctx context.Context, id uuid.UUID) (*Website, error)
}

// CreateWebsiteRequest captures the information required to create a site.
// Preset carries partial content (a marketing niche's overrides, or legacy
// flat keys); Names and Date ride on top of whatever the preset supplies.
type CreateWebsiteRequest struct {
	ThemeID   string
	NicheSlug string
	Preset    map[string]any
	Names     string
	Date      string
}

// RedeemRequest exchanges a code for a production site.
type RedeemRequest struct {
	Code  string
	Names string
	Date  string
}

// SaveContentRequest persists an edit session's working document wholesale.
type SaveContentRequest struct {
	SiteID  uuid.UUID
	Content content.Document
}

// CodeStatus is the validation result for a redemption code.
type CodeStatus struct {
	Valid           bool   `json:"valid"`
	ThemeID         string `json:"theme_id"`
	NicheSlug       string `json:"niche_slug,omitempty"`
	AlreadyRedeemed bool   `json:"already_redeemed"`
	ExistingSlug    string `json:"existing_slug,omitempty"`
}

// WebsiteRepository abstracts storage for site records.
type WebsiteRepository interface {
	Create(ctx context.Context, record *Website) (*Website, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Website, error)
	GetBySlug(ctx context.Context, slug string) (*Website, error)
	GetByPaymentRef(ctx context.Context, ref string) (*Website, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Website, error)
	Update(ctx context.Context, record *Website) (*Website, error)
	Upsert(ctx context.Context, record *Website) (*Website, error)
}

// RedemptionCodeRepository abstracts storage for redemption codes.
type RedemptionCodeRepository interface {
	Create(ctx context.Context, record *RedemptionCode) (*RedemptionCode, error)
	GetByCode(ctx context.Context, code string) (*RedemptionCode, error)
	Update(ctx context.Context, record *RedemptionCode) (*RedemptionCode, error)
}

// PaymentReference derives the stable identifier recording that one owner
// redeemed one code. The websites table carries a uniqueness constraint on
// it, which is what actually closes the concurrent-redemption window the
// read-then-insert check leaves open.
func PaymentReference(code, ownerID string) string {
	return identity.UUID("vowcraft:payment:" + strings.TrimSpace(code) + ":" + ownerID).String()
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

// SiteIDGenerator derives the opaque site identifier from the public slug.
type SiteIDGenerator func(slug string) uuid.UUID

// WithSiteIDGenerator overrides site id derivation.
func WithSiteIDGenerator(generator SiteIDGenerator) ServiceOption {
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
	websites WebsiteRepository
	codes    RedemptionCodeRepository
	registry themes.Registry
	merger   *merge.Engine
	auth     interfaces.AuthProvider
	now      func() time.Time
	id       SiteIDGenerator
	logger   interfaces.Logger
}

// NewService constructs the site lifecycle service.
func NewService(
	websites WebsiteRepository,
	codes RedemptionCodeRepository,
	registry themes.Registry,
	merger *merge.Engine,
	auth interfaces.AuthProvider,
	opts ...ServiceOption,
) Service {
	s := &service{
		websites: websites,
		codes:    codes,
		registry: registry,
		merger:   merger,
		auth:     auth,
		now:      time.Now,
		id:       identity.WebsiteUUID,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create builds a fresh demo site: slug derived from the display names,
// content merged from the theme's defaults, the niche's overrides, and the
// caller's preset, then the names and date applied on top.
func (s *service) Create(ctx context.Context, req CreateWebsiteRequest) (*Website, error) {
	owner, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return s.create(ctx, owner, req, StatusDemo, nil)
}

func (s *service) create(ctx context.Context, owner string, req CreateWebsiteRequest, status string, paymentRef *string) (*Website, error) {
	names := strings.TrimSpace(req.Names)
	if names == "" {
		return nil, ErrNamesRequired
	}
	themeID := strings.TrimSpace(req.ThemeID)
	if themeID == "" {
		return nil, ErrThemeRequired
	}

	slug, err := content.DeriveSlug(names)
	if err != nil || !content.IsValidSlug(slug) {
		return nil, ErrSlugInvalid
	}

	if existing, err := s.websites.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, ErrSlugExists
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	doc, err := s.buildContent(ctx, themeID, req.NicheSlug, req.Preset, names, req.Date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := &Website{
		ID:         s.id(slug),
		Slug:       slug,
		ThemeID:    themeID,
		OwnerID:    owner,
		Content:    doc,
		Status:     status,
		PaymentRef: paymentRef,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if niche := strings.TrimSpace(req.NicheSlug); niche != "" {
		record.NicheSlug = &niche
	}
	if status == StatusProduction {
		publishedAt := now
		record.PublishedAt = &publishedAt
	}

	created, err := s.websites.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("sites.created",
		"slug", created.Slug,
		"theme", created.ThemeID,
		"status", created.Status,
	)
	return created, nil
}

func (s *service) buildContent(ctx context.Context, themeID, nicheSlug string, preset map[string]any, names, date string) (content.Document, error) {
	var overrides map[string]any
	if trimmed := strings.TrimSpace(nicheSlug); trimmed != "" {
		niche, err := s.registry.Niche(ctx, themeID, trimmed)
		if err != nil {
			return nil, err
		}
		overrides = niche.Overrides
	}

	doc, err := s.merger.Merge(ctx, overrides, themeID)
	if err != nil {
		return nil, err
	}
	if len(preset) > 0 {
		doc = s.merger.Apply(ctx, doc, preset, themeID)
	}

	doc = editor.UpdateHero(doc, "names", content.NormalizeNames(names))
	if trimmed := strings.TrimSpace(date); trimmed != "" {
		formatted, err := content.FormatDisplayDate(trimmed)
		if err != nil {
			return nil, err
		}
		doc = editor.UpdateHero(doc, "date", formatted)
	}
	return doc, nil
}

// CheckCode validates a redemption code without redeeming it. Inactive and
// exhausted codes surface as errors; an authenticated caller who already
// redeemed the code gets the earlier site's slug back.
func (s *service) CheckCode(ctx context.Context, code string) (*CodeStatus, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, ErrCodeRequired
	}

	record, err := s.codes.GetByCode(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if !record.Active {
		return nil, ErrCodeInactive
	}
	if record.Exhausted() {
		return nil, ErrCodeExhausted
	}

	status := &CodeStatus{Valid: true, ThemeID: record.ThemeID}
	if record.NicheSlug != nil {
		status.NicheSlug = *record.NicheSlug
	}

	// Anonymous checks skip the already-redeemed lookup; it only exists to
	// redirect a signed-in repeat caller.
	owner, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		return status, nil
	}
	if existing, err := s.websites.GetByPaymentRef(ctx, PaymentReference(trimmed, owner)); err == nil && existing != nil {
		status.AlreadyRedeemed = true
		status.ExistingSlug = existing.Slug
	}
	return status, nil
}

// Redeem exchanges a valid code for a production site. The use count
// increment is best-effort: once the site exists, a bookkeeping failure is
// logged, never surfaced.
func (s *service) Redeem(ctx context.Context, req RedeemRequest) (*Website, error) {
	owner, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, ErrCodeRequired
	}

	record, err := s.codes.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !record.Active {
		return nil, ErrCodeInactive
	}
	if record.Exhausted() {
		return nil, ErrCodeExhausted
	}

	ref := PaymentReference(code, owner)
	if existing, err := s.websites.GetByPaymentRef(ctx, ref); err == nil && existing != nil {
		return nil, &DuplicateRedemptionError{Code: code, ExistingSlug: existing.Slug}
	}

	nicheSlug := ""
	if record.NicheSlug != nil {
		nicheSlug = *record.NicheSlug
	}
	created, err := s.create(ctx, owner, CreateWebsiteRequest{
		ThemeID:   record.ThemeID,
		NicheSlug: nicheSlug,
		Names:     req.Names,
		Date:      req.Date,
	}, StatusProduction, &ref)
	if err != nil {
		return nil, err
	}

	record.UseCount++
	record.UpdatedAt = s.now()
	if _, err := s.codes.Update(ctx, record); err != nil {
		s.logger.Warn("sites.use_count_increment_failed",
			"code", code,
			"slug", created.Slug,
			"error", err.Error(),
		)
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Website, error) {
	if id == uuid.Nil {
		return nil, ErrSiteIDRequired
	}
	return s.websites.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Website, error) {
	trimmed := strings.TrimSpace(slug)
	if trimmed == "" {
		return nil, &NotFoundError{Resource: "website"}
	}
	return s.websites.GetBySlug(ctx, trimmed)
}

func (s *service) ListByOwner(ctx context.Context) ([]*Website, error) {
	owner, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return s.websites.ListByOwner(ctx, owner)
}

// Save persists an edit session's document wholesale, keyed by site id.
// Last write wins; there is no version compare.
func (s *service) Save(ctx context.Context, req SaveContentRequest) (*Website, error) {
	owner, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if req.SiteID == uuid.Nil {
		return nil, ErrSiteIDRequired
	}
	if req.Content == nil {
		return nil, ErrContentRequired
	}

	site, err := s.websites.GetByID(ctx, req.SiteID)
	if err != nil {
		return nil, err
	}
	if site.OwnerID != owner {
		return nil, ErrOwnershipMismatch
	}

	site.Content = content.Clone(req.Content)
	site.UpdatedAt = s.now()

	saved, err := s.websites.Upsert(ctx, site)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("sites.saved", "slug", saved.Slug)
	return saved, nil
}

// Publish moves a demo site to production. Publishing an already-production
// site is a no-op, not an error.
func (s *service) Publish(ctx context.Context, id uuid.UUID) (*Website, error) {
	owner, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if id == uuid.Nil {
		return nil, ErrSiteIDRequired
	}

	site, err := s.websites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if site.OwnerID != owner {
		return nil, ErrOwnershipMismatch
	}
	if site.Status == StatusProduction {
		return site, nil
	}

	now := s.now()
	site.Status = StatusProduction
	site.PublishedAt = &now
	site.UpdatedAt = now

	published, err := s.websites.Update(ctx, site)
	if err != nil {
		return nil, err
	}
	s.logger.Info("sites.published", "slug", published.Slug)
	return published, nil
}

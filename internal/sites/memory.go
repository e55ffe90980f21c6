package sites

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryWebsiteRepository is an in-memory implementation for scaffolding and tests.
type MemoryWebsiteRepository struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*Website
	slugIndex map[string]uuid.UUID
	refIndex  map[string]uuid.UUID
}

// NewMemoryWebsiteRepository creates an empty in-memory website repository.
func NewMemoryWebsiteRepository() *MemoryWebsiteRepository {
	return &MemoryWebsiteRepository{
		records:   make(map[uuid.UUID]*Website),
		slugIndex: make(map[string]uuid.UUID),
		refIndex:  make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied site record. The payment reference index is
// unique, mirroring the storage constraint.
func (m *MemoryWebsiteRepository) Create(_ context.Context, record *Website) (*Website, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.slugIndex[record.Slug]; exists {
		return nil, ErrSlugExists
	}
	if record.PaymentRef != nil {
		if id, exists := m.refIndex[*record.PaymentRef]; exists {
			return nil, &DuplicateRedemptionError{ExistingSlug: m.records[id].Slug}
		}
	}

	copied := cloneWebsite(record)
	m.records[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	if copied.PaymentRef != nil {
		m.refIndex[*copied.PaymentRef] = copied.ID
	}
	return cloneWebsite(copied), nil
}

// GetByID retrieves a site by identifier.
func (m *MemoryWebsiteRepository) GetByID(_ context.Context, id uuid.UUID) (*Website, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "website", Key: id.String()}
	}
	return cloneWebsite(rec), nil
}

// GetBySlug retrieves a site by its public slug.
func (m *MemoryWebsiteRepository) GetBySlug(_ context.Context, slug string) (*Website, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "website", Key: slug}
	}
	return cloneWebsite(m.records[id]), nil
}

// GetByPaymentRef retrieves the site created by a specific redemption.
func (m *MemoryWebsiteRepository) GetByPaymentRef(_ context.Context, ref string) (*Website, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.refIndex[ref]
	if !ok {
		return nil, &NotFoundError{Resource: "website", Key: ref}
	}
	return cloneWebsite(m.records[id]), nil
}

// ListByOwner returns the owner's sites, newest first.
func (m *MemoryWebsiteRepository) ListByOwner(_ context.Context, ownerID string) ([]*Website, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Website, 0)
	for _, rec := range m.records {
		if rec.OwnerID == ownerID {
			out = append(out, cloneWebsite(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update replaces an existing record.
func (m *MemoryWebsiteRepository) Update(_ context.Context, record *Website) (*Website, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "website", Key: record.ID.String()}
	}
	delete(m.slugIndex, existing.Slug)

	copied := cloneWebsite(record)
	m.records[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	if copied.PaymentRef != nil {
		m.refIndex[*copied.PaymentRef] = copied.ID
	}
	return cloneWebsite(copied), nil
}

// Upsert inserts or replaces by site id.
func (m *MemoryWebsiteRepository) Upsert(ctx context.Context, record *Website) (*Website, error) {
	m.mu.RLock()
	_, exists := m.records[record.ID]
	m.mu.RUnlock()

	if exists {
		return m.Update(ctx, record)
	}
	return m.Create(ctx, record)
}

// MemoryRedemptionCodeRepository is an in-memory implementation for scaffolding and tests.
type MemoryRedemptionCodeRepository struct {
	mu      sync.RWMutex
	records map[string]*RedemptionCode
}

// NewMemoryRedemptionCodeRepository creates an empty in-memory code repository.
func NewMemoryRedemptionCodeRepository() *MemoryRedemptionCodeRepository {
	return &MemoryRedemptionCodeRepository{
		records: make(map[string]*RedemptionCode),
	}
}

// Create inserts the supplied code.
func (m *MemoryRedemptionCodeRepository) Create(_ context.Context, record *RedemptionCode) (*RedemptionCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRedemptionCode(record)
	m.records[strings.TrimSpace(copied.Code)] = copied
	return cloneRedemptionCode(copied), nil
}

// GetByCode retrieves a code by its public token.
func (m *MemoryRedemptionCodeRepository) GetByCode(_ context.Context, code string) (*RedemptionCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[strings.TrimSpace(code)]
	if !ok {
		return nil, &NotFoundError{Resource: "redemption_code", Key: code}
	}
	return cloneRedemptionCode(rec), nil
}

// Update replaces an existing code record.
func (m *MemoryRedemptionCodeRepository) Update(_ context.Context, record *RedemptionCode) (*RedemptionCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.TrimSpace(record.Code)
	if _, ok := m.records[key]; !ok {
		return nil, &NotFoundError{Resource: "redemption_code", Key: record.Code}
	}
	copied := cloneRedemptionCode(record)
	m.records[key] = copied
	return cloneRedemptionCode(copied), nil
}

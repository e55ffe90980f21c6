package guests

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryGuestRepository is an in-memory implementation for scaffolding and tests.
type MemoryGuestRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Guest
}

// NewMemoryGuestRepository creates an empty in-memory guest repository.
func NewMemoryGuestRepository() *MemoryGuestRepository {
	return &MemoryGuestRepository{
		records: make(map[uuid.UUID]*Guest),
	}
}

// Create inserts the supplied guest row.
func (m *MemoryGuestRepository) Create(_ context.Context, record *Guest) (*Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneGuest(record)
	m.records[copied.ID] = copied
	return cloneGuest(copied), nil
}

// ListByWedding returns a wedding's RSVPs in submission order.
func (m *MemoryGuestRepository) ListByWedding(_ context.Context, weddingID uuid.UUID) ([]*Guest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Guest, 0)
	for _, rec := range m.records {
		if rec.WeddingID == weddingID {
			out = append(out, cloneGuest(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

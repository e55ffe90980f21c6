package guests

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewGuestRepository(db *bun.DB) repository.Repository[*Guest] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Guest]{
		NewRecord: func() *Guest { return &Guest{} },
		GetID: func(g *Guest) uuid.UUID {
			return g.ID
		},
		SetID: func(g *Guest, id uuid.UUID) {
			g.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(g *Guest) string {
			return g.ID.String()
		},
	})
}

type BunGuestRepository struct {
	repo repository.Repository[*Guest]
}

func NewBunGuestRepository(db *bun.DB) *BunGuestRepository {
	return NewBunGuestRepositoryWithCache(db, nil, nil)
}

// NewBunGuestRepositoryWithCache constructs a GuestRepository with optional caching.
func NewBunGuestRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunGuestRepository {
	base := NewGuestRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunGuestRepository{repo: base}
}

func (r *BunGuestRepository) Create(ctx context.Context, record *Guest) (*Guest, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "guest", record.ID.String())
	}
	return created, nil
}

func (r *BunGuestRepository) ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*Guest, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.wedding_id = ?", weddingID).
				OrderExpr("?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

package sites

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

type BunWebsiteRepository struct {
	repo repository.Repository[*Website]
}

func NewBunWebsiteRepository(db *bun.DB) *BunWebsiteRepository {
	return NewBunWebsiteRepositoryWithCache(db, nil, nil)
}

// NewBunWebsiteRepositoryWithCache constructs a WebsiteRepository with optional caching.
func NewBunWebsiteRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunWebsiteRepository {
	base := NewWebsiteRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunWebsiteRepository{repo: wrapped}
}

func (r *BunWebsiteRepository) Create(ctx context.Context, record *Website) (*Website, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunWebsiteRepository) GetByID(ctx context.Context, id uuid.UUID) (*Website, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "website", id.String())
	}
	return result, nil
}

func (r *BunWebsiteRepository) GetBySlug(ctx context.Context, slug string) (*Website, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "website", slug)
	}
	return result, nil
}

func (r *BunWebsiteRepository) GetByPaymentRef(ctx context.Context, ref string) (*Website, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.payment_ref = ?", ref)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "website", Key: ref}
	}
	return records[0], nil
}

func (r *BunWebsiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Website, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.owner_id = ?", ownerID).
				OrderExpr("?TableAlias.created_at DESC")
		}),
	)
	return records, err
}

func (r *BunWebsiteRepository) Update(ctx context.Context, record *Website) (*Website, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "website", record.ID.String())
	}
	return updated, nil
}

// Upsert writes by site id: update when the row exists, insert otherwise.
func (r *BunWebsiteRepository) Upsert(ctx context.Context, record *Website) (*Website, error) {
	if _, err := r.repo.GetByID(ctx, record.ID.String()); err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return r.Create(ctx, record)
		}
		return nil, mapRepositoryError(err, "website", record.ID.String())
	}
	return r.Update(ctx, record)
}

type BunRedemptionCodeRepository struct {
	repo repository.Repository[*RedemptionCode]
}

func NewBunRedemptionCodeRepository(db *bun.DB) *BunRedemptionCodeRepository {
	return NewBunRedemptionCodeRepositoryWithCache(db, nil, nil)
}

// NewBunRedemptionCodeRepositoryWithCache constructs a RedemptionCodeRepository with optional caching.
func NewBunRedemptionCodeRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRedemptionCodeRepository {
	base := NewRedemptionCodeRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunRedemptionCodeRepository{repo: wrapped}
}

func (r *BunRedemptionCodeRepository) Create(ctx context.Context, record *RedemptionCode) (*RedemptionCode, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunRedemptionCodeRepository) GetByCode(ctx context.Context, code string) (*RedemptionCode, error) {
	result, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err, "redemption_code", code)
	}
	return result, nil
}

func (r *BunRedemptionCodeRepository) Update(ctx context.Context, record *RedemptionCode) (*RedemptionCode, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "redemption_code", record.Code)
	}
	return updated, nil
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

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}

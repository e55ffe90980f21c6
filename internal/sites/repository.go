package sites

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewWebsiteRepository(db *bun.DB) repository.Repository[*Website] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Website]{
		NewRecord: func() *Website { return &Website{} },
		GetID: func(w *Website) uuid.UUID {
			return w.ID
		},
		SetID: func(w *Website, id uuid.UUID) {
			w.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(w *Website) string {
			return w.Slug
		},
	})
}

func NewRedemptionCodeRepository(db *bun.DB) repository.Repository[*RedemptionCode] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*RedemptionCode]{
		NewRecord: func() *RedemptionCode { return &RedemptionCode{} },
		GetID: func(c *RedemptionCode) uuid.UUID {
			return c.ID
		},
		SetID: func(c *RedemptionCode, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(c *RedemptionCode) string {
			return c.Code
		},
	})
}

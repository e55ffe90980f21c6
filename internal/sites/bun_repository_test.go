package sites_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vowcraft/vowcraft/content"
	"github.com/vowcraft/vowcraft/internal/identity"
	"github.com/vowcraft/vowcraft/internal/sites"
	"github.com/vowcraft/vowcraft/internal/themes"
	"github.com/vowcraft/vowcraft/pkg/testsupport"
)

func seedWebsite(slug, owner string) *sites.Website {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return &sites.Website{
		ID:      identity.WebsiteUUID(slug),
		Slug:    slug,
		ThemeID: themes.ThemeVintageVinyl,
		OwnerID: owner,
		Content: content.Document{
			"hero": map[string]any{"names": "Alex & Jordan"},
		},
		Status:    sites.StatusDemo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBunWebsiteRepositoryLifecycle(t *testing.T) {
	db := testsupport.NewSQLiteDB(t, "sites_websites_test")
	testsupport.CreateCoreTables(t, db)
	repo := sites.NewBunWebsiteRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, seedWebsite("alex-jordan", "owner-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Slug != "alex-jordan" {
		t.Fatalf("unexpected slug %q", byID.Slug)
	}

	bySlug, err := repo.GetBySlug(ctx, "alex-jordan")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if bySlug.ID != created.ID {
		t.Fatalf("expected id %s got %s", created.ID, bySlug.ID)
	}

	hero, ok := bySlug.Content["hero"].(map[string]any)
	if !ok {
		t.Fatalf("content did not round-trip, got %T", bySlug.Content["hero"])
	}
	if hero["names"] != "Alex & Jordan" {
		t.Fatalf("unexpected hero names %v", hero["names"])
	}

	bySlug.Status = sites.StatusProduction
	ref := sites.PaymentReference("GOLD", "owner-1")
	bySlug.PaymentRef = &ref
	if _, err := repo.Update(ctx, bySlug); err != nil {
		t.Fatalf("Update: %v", err)
	}

	byRef, err := repo.GetByPaymentRef(ctx, ref)
	if err != nil {
		t.Fatalf("GetByPaymentRef: %v", err)
	}
	if byRef.ID != created.ID {
		t.Fatalf("expected id %s got %s", created.ID, byRef.ID)
	}

	owned, err := repo.ListByOwner(ctx, "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(owned) != 1 {
		t.Fatalf("expected 1 site got %d", len(owned))
	}

	var notFound *sites.NotFoundError
	if _, err := repo.GetBySlug(ctx, "missing"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if _, err := repo.GetByPaymentRef(ctx, "missing-ref"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBunWebsiteRepositoryUpsert(t *testing.T) {
	db := testsupport.NewSQLiteDB(t, "sites_upsert_test")
	testsupport.CreateCoreTables(t, db)
	repo := sites.NewBunWebsiteRepository(db)
	ctx := context.Background()

	record := seedWebsite("robin-casey", "owner-2")
	inserted, err := repo.Upsert(ctx, record)
	if err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	if inserted.ID != record.ID {
		t.Fatalf("expected id %s got %s", record.ID, inserted.ID)
	}

	inserted.Content = content.Document{
		"hero": map[string]any{"names": "Robin & Casey"},
	}
	updated, err := repo.Upsert(ctx, inserted)
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	hero := updated.Content["hero"].(map[string]any)
	if hero["names"] != "Robin & Casey" {
		t.Fatalf("unexpected names %v", hero["names"])
	}

	all, err := repo.ListByOwner(ctx, "owner-2")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("upsert should not duplicate, got %d rows", len(all))
	}
}

func TestBunRedemptionCodeRepository(t *testing.T) {
	db := testsupport.NewSQLiteDB(t, "sites_codes_test")
	testsupport.CreateCoreTables(t, db)
	repo := sites.NewBunRedemptionCodeRepository(db)
	ctx := context.Background()

	maxUses := 3
	created, err := repo.Create(ctx, &sites.RedemptionCode{
		ID:      identity.RedemptionCodeUUID("GOLD"),
		Code:    "GOLD",
		ThemeID: themes.ThemeVintageVinyl,
		Active:  true,
		MaxUses: &maxUses,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	fetched, err := repo.GetByCode(ctx, "GOLD")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected id %s got %s", created.ID, fetched.ID)
	}

	fetched.UseCount++
	updated, err := repo.Update(ctx, fetched)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.UseCount != 1 {
		t.Fatalf("expected use count 1 got %d", updated.UseCount)
	}

	var notFound *sites.NotFoundError
	if _, err := repo.GetByCode(ctx, "MISSING"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

package guests_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vowcraft/vowcraft/internal/guests"
	"github.com/vowcraft/vowcraft/internal/identity"
	"github.com/vowcraft/vowcraft/pkg/testsupport"
)

func TestBunGuestRepository(t *testing.T) {
	db := testsupport.NewSQLiteDB(t, "guests_repo_test")
	testsupport.CreateCoreTables(t, db)
	repo := guests.NewBunGuestRepository(db)
	ctx := context.Background()

	weddingID := identity.WebsiteUUID("alex-jordan")
	otherWedding := identity.WebsiteUUID("robin-casey")
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	email := "sam@example.com"
	records := []*guests.Guest{
		{ID: uuid.New(), WeddingID: weddingID, Name: "Sam Lee", Email: &email, Attending: true, PlusOnes: 1, CreatedAt: base},
		{ID: uuid.New(), WeddingID: weddingID, Name: "Noor Khan", Attending: false, CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), WeddingID: otherWedding, Name: "Jo March", Attending: true, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, record := range records {
		if _, err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Create %s: %v", record.Name, err)
		}
	}

	list, err := repo.ListByWedding(ctx, weddingID)
	if err != nil {
		t.Fatalf("ListByWedding: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 guests got %d", len(list))
	}
	if list[0].Name != "Sam Lee" || list[1].Name != "Noor Khan" {
		t.Fatalf("expected submission order, got %q then %q", list[0].Name, list[1].Name)
	}
	if list[0].Email == nil || *list[0].Email != email {
		t.Fatalf("email did not round-trip: %v", list[0].Email)
	}

	empty, err := repo.ListByWedding(ctx, uuid.New())
	if err != nil {
		t.Fatalf("ListByWedding empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no guests got %d", len(empty))
	}
}

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pentrack/server/internal/db"
	"github.com/pentrack/server/internal/model"
)

func TestWishlistFlow(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")

	item, err := CreateWishlistItem(ctx, database, userID, &model.WishlistItem{
		Brand: "Pilot", Model: "Custom 823", Priority: model.PriorityGrail,
	})
	if err != nil {
		t.Fatalf("CreateWishlistItem: %v", err)
	}
	if item.Acquired {
		t.Error("expected new item not acquired")
	}
	if item.EstimatedPrice != nil {
		t.Error("expected nil estimated_price by default")
	}

	item.Acquired = true
	updated, err := UpdateWishlistItem(ctx, database, userID, item.ID, item)
	if err != nil {
		t.Fatalf("UpdateWishlistItem: %v", err)
	}
	if !updated.Acquired {
		t.Error("expected acquired toggle to persist")
	}

	if err := DeleteWishlistItem(ctx, database, userID, item.ID); err != nil {
		t.Fatalf("DeleteWishlistItem: %v", err)
	}
	items, _ := ListWishlist(ctx, database, userID)
	if len(items) != 0 {
		t.Errorf("expected empty wishlist after delete, got %d items", len(items))
	}
}

func TestWishlistOwnershipScoping(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, database, "alice@example.com")
	mallory := createTestUser(t, database, "mallory@example.com")

	item, _ := CreateWishlistItem(ctx, database, alice, &model.WishlistItem{Brand: "Visconti", Priority: model.PriorityHigh})

	got, err := GetWishlistItem(ctx, database, mallory, item.ID)
	if err != nil {
		t.Fatalf("GetWishlistItem: %v", err)
	}
	if got != nil {
		t.Error("expected foreign-owned item to read as missing")
	}
	if _, err := UpdateWishlistItem(ctx, database, mallory, item.ID, item); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound updating foreign item, got %v", err)
	}
}

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pentrack/server/internal/db"
	"github.com/pentrack/server/internal/model"
)

func TestCreateAndListInkBottles(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")

	size := 50.0
	_, err := CreateInkBottle(ctx, database, userID, &model.InkBottle{
		Name: "Kon-Peki", Brand: "Pilot", BottleSizeML: &size, RemainingPct: 80,
	})
	if err != nil {
		t.Fatalf("CreateInkBottle: %v", err)
	}
	CreateInkBottle(ctx, database, userID, &model.InkBottle{Name: "X-Feather", Brand: "Noodler's", RemainingPct: 100})

	bottles, err := ListInkBottles(ctx, database, userID)
	if err != nil {
		t.Fatalf("ListInkBottles: %v", err)
	}
	if len(bottles) != 2 {
		t.Fatalf("expected 2 bottles, got %d", len(bottles))
	}
	// Ordered by brand then name.
	if bottles[0].Brand != "Noodler's" {
		t.Errorf("expected Noodler's first, got %q", bottles[0].Brand)
	}
}

func TestPatchInkBottleRetainsOmittedFields(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")

	size := 50.0
	bottle, _ := CreateInkBottle(ctx, database, userID, &model.InkBottle{
		Name: "Kon-Peki", Brand: "Pilot", ColorDescription: "Cerulean blue",
		BottleSizeML: &size, RemainingPct: 80, Notes: "sheens nicely",
	})

	remaining := 10
	patched, err := PatchInkBottle(ctx, database, userID, bottle.ID, &InkBottlePatch{RemainingPct: &remaining})
	if err != nil {
		t.Fatalf("PatchInkBottle: %v", err)
	}

	if patched.RemainingPct != 10 {
		t.Errorf("expected remaining_pct 10, got %d", patched.RemainingPct)
	}
	if patched.Name != "Kon-Peki" || patched.Brand != "Pilot" {
		t.Errorf("expected name/brand retained, got %q/%q", patched.Name, patched.Brand)
	}
	if patched.ColorDescription != "Cerulean blue" || patched.Notes != "sheens nicely" {
		t.Error("expected description and notes retained")
	}
	if patched.BottleSizeML == nil || *patched.BottleSizeML != 50 {
		t.Error("expected bottle size retained")
	}
}

func TestUpdateInkBottleClearsNullSize(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")

	size := 50.0
	bottle, _ := CreateInkBottle(ctx, database, userID, &model.InkBottle{Name: "Kon-Peki", BottleSizeML: &size})

	bottle.BottleSizeML = nil
	updated, err := UpdateInkBottle(ctx, database, userID, bottle.ID, bottle)
	if err != nil {
		t.Fatalf("UpdateInkBottle: %v", err)
	}
	if updated.BottleSizeML != nil {
		t.Error("expected full update with nil size to clear stored value")
	}
}

func TestInkBottleOwnershipScoping(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, database, "alice@example.com")
	mallory := createTestUser(t, database, "mallory@example.com")

	bottle, _ := CreateInkBottle(ctx, database, alice, &model.InkBottle{Name: "Shin-Kai"})

	got, err := GetInkBottle(ctx, database, mallory, bottle.ID)
	if err != nil {
		t.Fatalf("GetInkBottle: %v", err)
	}
	if got != nil {
		t.Error("expected foreign-owned bottle to read as missing")
	}
	if err := DeleteInkBottle(ctx, database, mallory, bottle.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting foreign bottle, got %v", err)
	}
}

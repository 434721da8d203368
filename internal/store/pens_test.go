package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pentrack/server/internal/db"
	"github.com/pentrack/server/internal/model"
)

func TestCreateAndGetPen(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")

	pen, err := CreatePen(ctx, database, userID, &model.Pen{Brand: "Pilot", Model: "Custom 74"})
	if err != nil {
		t.Fatalf("CreatePen: %v", err)
	}
	if pen.ID == 0 {
		t.Error("expected generated pen id")
	}
	if pen.Brand != "Pilot" {
		t.Errorf("expected brand 'Pilot', got %q", pen.Brand)
	}
	if pen.CurrentInk != "" {
		t.Errorf("expected empty current_ink, got %q", pen.CurrentInk)
	}
	if pen.Rating != 0 {
		t.Errorf("expected rating 0, got %d", pen.Rating)
	}
	if pen.IsDailyCarry {
		t.Error("expected is_daily_carry false")
	}
	if pen.PurchasePrice != nil {
		t.Error("expected nil purchase_price for unset price")
	}
}

func TestPenNullPriceDistinctFromZero(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")

	zero := 0.0
	free, _ := CreatePen(ctx, database, userID, &model.Pen{Brand: "Jinhao", PurchasePrice: &zero})
	unset, _ := CreatePen(ctx, database, userID, &model.Pen{Brand: "Jinhao"})

	got, _ := GetPen(ctx, database, userID, free.ID)
	if got.PurchasePrice == nil || *got.PurchasePrice != 0 {
		t.Error("expected free pen to keep explicit zero price")
	}
	got, _ = GetPen(ctx, database, userID, unset.ID)
	if got.PurchasePrice != nil {
		t.Error("expected unset price to stay null")
	}
}

func TestUpdatePenFullReplace(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")

	pen := createTestPen(t, database, userID, "Lamy", "Safari")
	pen.Notes = "scratchy nib"
	pen.Rating = 3
	if _, err := UpdatePen(ctx, database, userID, pen.ID, pen); err != nil {
		t.Fatalf("UpdatePen: %v", err)
	}

	// A second full update with a fresh record wipes fields not present.
	updated, err := UpdatePen(ctx, database, userID, pen.ID, &model.Pen{Brand: "Lamy", Model: "Safari"})
	if err != nil {
		t.Fatalf("UpdatePen: %v", err)
	}
	if updated.Notes != "" {
		t.Errorf("expected notes cleared by full replace, got %q", updated.Notes)
	}
	if updated.Rating != 0 {
		t.Errorf("expected rating reset by full replace, got %d", updated.Rating)
	}
}

func TestPenOwnershipScoping(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, database, "alice@example.com")
	mallory := createTestUser(t, database, "mallory@example.com")

	pen := createTestPen(t, database, alice, "Sailor", "Pro Gear")

	got, err := GetPen(ctx, database, mallory, pen.ID)
	if err != nil {
		t.Fatalf("GetPen: %v", err)
	}
	if got != nil {
		t.Error("expected foreign-owned pen to read as missing")
	}

	if _, err := UpdatePen(ctx, database, mallory, pen.ID, pen); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound updating foreign pen, got %v", err)
	}
	if err := DeletePen(ctx, database, mallory, pen.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting foreign pen, got %v", err)
	}

	// Still intact for the owner.
	got, _ = GetPen(ctx, database, alice, pen.ID)
	if got == nil {
		t.Fatal("expected owner to still see the pen")
	}
}

func TestDeletePenCascades(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")

	pen := createTestPen(t, database, userID, "TWSBI", "Eco")
	if _, err := AppendInkEntry(ctx, database, userID, pen.ID, "Kon-Peki", "2024-01-10", ""); err != nil {
		t.Fatalf("AppendInkEntry: %v", err)
	}
	if err := AddPenTag(ctx, database, userID, pen.ID, "demonstrator"); err != nil {
		t.Fatalf("AddPenTag: %v", err)
	}
	if _, err := AddMaintenance(ctx, database, userID, pen.ID, "flush", "", "2024-02-01"); err != nil {
		t.Fatalf("AddMaintenance: %v", err)
	}
	if _, err := AddWritingSample(ctx, database, userID, pen.ID, "Kon-Peki", "Tomoe River", "", ""); err != nil {
		t.Fatalf("AddWritingSample: %v", err)
	}

	if err := DeletePen(ctx, database, userID, pen.ID); err != nil {
		t.Fatalf("DeletePen: %v", err)
	}

	for _, table := range []string{"ink_history", "pen_tags", "maintenance_log", "writing_samples"} {
		var count int
		if err := database.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM `+table+` WHERE pen_id = ?`, pen.ID,
		).Scan(&count); err != nil {
			t.Fatalf("counting %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("expected 0 %s rows after pen delete, got %d", table, count)
		}
	}
}

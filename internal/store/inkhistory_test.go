package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pentrack/server/internal/db"
)

func TestAppendSetsCurrentInk(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")
	pen := createTestPen(t, database, userID, "Pilot", "Metropolitan")

	entry, err := AppendInkEntry(ctx, database, userID, pen.ID, "Kon-Peki", "2024-01-10", "first fill")
	if err != nil {
		t.Fatalf("AppendInkEntry: %v", err)
	}
	if entry.InkName != "Kon-Peki" {
		t.Errorf("expected ink name 'Kon-Peki', got %q", entry.InkName)
	}

	got, _ := GetPen(ctx, database, userID, pen.ID)
	if got.CurrentInk != "Kon-Peki" {
		t.Errorf("expected current_ink 'Kon-Peki', got %q", got.CurrentInk)
	}
}

func TestBackdatedAppendKeepsNewerInk(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")
	pen := createTestPen(t, database, userID, "Pilot", "Metropolitan")

	AppendInkEntry(ctx, database, userID, pen.ID, "Kon-Peki", "2024-01-10", "")
	if _, err := AppendInkEntry(ctx, database, userID, pen.ID, "Black", "2024-01-05", ""); err != nil {
		t.Fatalf("AppendInkEntry: %v", err)
	}

	got, _ := GetPen(ctx, database, userID, pen.ID)
	if got.CurrentInk != "Kon-Peki" {
		t.Errorf("expected backdated entry not to change current_ink, got %q", got.CurrentInk)
	}
}

func TestDeleteRecomputesCurrentInk(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")
	pen := createTestPen(t, database, userID, "Pilot", "Metropolitan")

	AppendInkEntry(ctx, database, userID, pen.ID, "Kon-Peki", "2024-01-10", "")
	AppendInkEntry(ctx, database, userID, pen.ID, "Black", "2024-01-05", "")

	entries, err := ListInkEntries(ctx, database, userID, pen.ID)
	if err != nil {
		t.Fatalf("ListInkEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Most recently inked first.
	if entries[0].InkName != "Kon-Peki" {
		t.Errorf("expected 'Kon-Peki' first, got %q", entries[0].InkName)
	}

	// Deleting the newest entry falls back to the older ink.
	if err := DeleteInkEntry(ctx, database, userID, entries[0].ID); err != nil {
		t.Fatalf("DeleteInkEntry: %v", err)
	}
	got, _ := GetPen(ctx, database, userID, pen.ID)
	if got.CurrentInk != "Black" {
		t.Errorf("expected current_ink 'Black' after delete, got %q", got.CurrentInk)
	}

	// Deleting the last entry clears current_ink.
	if err := DeleteInkEntry(ctx, database, userID, entries[1].ID); err != nil {
		t.Fatalf("DeleteInkEntry: %v", err)
	}
	got, _ = GetPen(ctx, database, userID, pen.ID)
	if got.CurrentInk != "" {
		t.Errorf("expected empty current_ink with no history, got %q", got.CurrentInk)
	}
}

func TestInkHistoryForeignPenNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, database, "alice@example.com")
	mallory := createTestUser(t, database, "mallory@example.com")
	pen := createTestPen(t, database, alice, "Sailor", "1911")

	if _, err := AppendInkEntry(ctx, database, mallory, pen.ID, "Black", "2024-01-01", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound appending to foreign pen, got %v", err)
	}
	if _, err := ListInkEntries(ctx, database, mallory, pen.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound listing foreign pen history, got %v", err)
	}

	entry, _ := AppendInkEntry(ctx, database, alice, pen.ID, "Black", "2024-01-01", "")
	if err := DeleteInkEntry(ctx, database, mallory, entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting foreign entry, got %v", err)
	}
}

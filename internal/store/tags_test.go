package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/pentrack/server/internal/db"
)

func TestAddDuplicateTagIsNoOp(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")
	pen := createTestPen(t, database, userID, "Lamy", "2000")

	if err := AddPenTag(ctx, database, userID, pen.ID, "daily-carry"); err != nil {
		t.Fatalf("AddPenTag: %v", err)
	}
	if err := AddPenTag(ctx, database, userID, pen.ID, "daily-carry"); err != nil {
		t.Fatalf("AddPenTag duplicate: %v", err)
	}

	tags, err := ListPenTags(ctx, database, userID, pen.ID)
	if err != nil {
		t.Fatalf("ListPenTags: %v", err)
	}
	if len(tags) != 1 {
		t.Errorf("expected exactly 1 tag after duplicate add, got %d", len(tags))
	}
}

func TestReplacePenTags(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "owner@example.com")
	pen := createTestPen(t, database, userID, "Lamy", "2000")

	AddPenTag(ctx, database, userID, pen.ID, "old")
	if err := ReplacePenTags(ctx, database, userID, pen.ID, []string{"vintage", "gold-nib", "vintage"}); err != nil {
		t.Fatalf("ReplacePenTags: %v", err)
	}

	tags, _ := ListPenTags(ctx, database, userID, pen.ID)
	want := []string{"gold-nib", "vintage"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("expected tags %v, got %v", want, tags)
	}
}

func TestListAllTagsScopedToOwner(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, database, "alice@example.com")
	bob := createTestUser(t, database, "bob@example.com")

	alicePen := createTestPen(t, database, alice, "Pilot", "E95s")
	bobPen := createTestPen(t, database, bob, "Pilot", "E95s")
	AddPenTag(ctx, database, alice, alicePen.ID, "pocket-pen")
	AddPenTag(ctx, database, bob, bobPen.ID, "loud-color")

	tags, err := ListAllTags(ctx, database, alice)
	if err != nil {
		t.Fatalf("ListAllTags: %v", err)
	}
	if len(tags) != 1 || tags[0] != "pocket-pen" {
		t.Errorf("expected only alice's tags, got %v", tags)
	}
}

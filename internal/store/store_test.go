package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/pentrack/server/internal/model"
)

// createTestUser inserts a user and returns its ID.
func createTestUser(t *testing.T, db *sql.DB, email string) string {
	t.Helper()
	u, err := CreateUser(context.Background(), db, uuid.NewString(), "Test User", email, "hash")
	if err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return u.ID
}

// createTestPen inserts a minimal pen for the user and returns it.
func createTestPen(t *testing.T, db *sql.DB, userID, brand, penModel string) *model.Pen {
	t.Helper()
	pen, err := CreatePen(context.Background(), db, userID, &model.Pen{Brand: brand, Model: penModel})
	if err != nil {
		t.Fatalf("creating test pen: %v", err)
	}
	return pen
}

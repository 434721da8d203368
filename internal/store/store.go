// Package store implements owner-scoped persistence for the pen catalog.
//
// Every query on a top-level entity filters by user_id; queries on child
// rows (ink history, tags, maintenance, samples) re-verify ownership through
// a join on pens. A row that exists but belongs to another user is
// indistinguishable from a row that does not exist: reads return nil and
// mutations return ErrNotFound.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned by mutations that target a row which is absent or
// owned by someone else.
var ErrNotFound = errors.New("not found")

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// penOwned reports whether the pen exists and belongs to the user.
func penOwned(ctx context.Context, q querier, userID string, penID int64) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx,
		`SELECT 1 FROM pens WHERE id = ? AND user_id = ?`, penID, userID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking pen ownership: %w", err)
	}
	return true, nil
}

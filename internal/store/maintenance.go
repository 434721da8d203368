package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pentrack/server/internal/model"
)

// ListMaintenance returns the service log for one of the user's pens,
// newest first.
func ListMaintenance(ctx context.Context, db *sql.DB, userID string, penID int64) ([]model.MaintenanceEntry, error) {
	owned, err := penOwned(ctx, db, userID, penID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotFound
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, pen_id, type, notes, date, created_at
		 FROM maintenance_log WHERE pen_id = ?
		 ORDER BY date DESC, created_at DESC`, penID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing maintenance log: %w", err)
	}
	defer rows.Close()

	var entries []model.MaintenanceEntry
	for rows.Next() {
		var e model.MaintenanceEntry
		if err := rows.Scan(&e.ID, &e.PenID, &e.Type, &e.Notes, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning maintenance entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddMaintenance appends a service log entry to one of the user's pens.
func AddMaintenance(ctx context.Context, db *sql.DB, userID string, penID int64, typ, notes, date string) (*model.MaintenanceEntry, error) {
	owned, err := penOwned(ctx, db, userID, penID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotFound
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO maintenance_log (pen_id, type, notes, date) VALUES (?, ?, ?, ?)`,
		penID, typ, notes, date,
	)
	if err != nil {
		return nil, fmt.Errorf("adding maintenance entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting maintenance entry id: %w", err)
	}

	e := &model.MaintenanceEntry{}
	err = db.QueryRowContext(ctx,
		`SELECT id, pen_id, type, notes, date, created_at
		 FROM maintenance_log WHERE id = ?`, id,
	).Scan(&e.ID, &e.PenID, &e.Type, &e.Notes, &e.Date, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting maintenance entry: %w", err)
	}
	return e, nil
}

// DeleteMaintenance removes a service log entry, verifying ownership through
// the parent pen.
func DeleteMaintenance(ctx context.Context, db *sql.DB, userID string, entryID int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM maintenance_log WHERE id = ? AND pen_id IN
		    (SELECT id FROM pens WHERE user_id = ?)`, entryID, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting maintenance entry: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

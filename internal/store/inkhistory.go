package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pentrack/server/internal/model"
)

// ListInkEntries returns the ink history for one of the user's pens, most
// recently inked first.
func ListInkEntries(ctx context.Context, db *sql.DB, userID string, penID int64) ([]model.InkEntry, error) {
	owned, err := penOwned(ctx, db, userID, penID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotFound
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, pen_id, ink_name, inked_date, notes, created_at
		 FROM ink_history WHERE pen_id = ?
		 ORDER BY inked_date DESC, created_at DESC`, penID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing ink history: %w", err)
	}
	defer rows.Close()

	var entries []model.InkEntry
	for rows.Next() {
		var e model.InkEntry
		if err := rows.Scan(&e.ID, &e.PenID, &e.InkName, &e.InkedDate, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning ink entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AppendInkEntry records an ink fill for one of the user's pens and
// recomputes the pen's current_ink in the same transaction.
//
// The recompute re-queries the true most-recent entry rather than assuming
// the new one wins, so backdated entries never clobber a newer ink.
func AppendInkEntry(ctx context.Context, db *sql.DB, userID string, penID int64, inkName, inkedDate, notes string) (*model.InkEntry, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	owned, err := penOwned(ctx, tx, userID, penID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotFound
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO ink_history (pen_id, ink_name, inked_date, notes) VALUES (?, ?, ?, ?)`,
		penID, inkName, inkedDate, notes,
	)
	if err != nil {
		return nil, fmt.Errorf("appending ink entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting ink entry id: %w", err)
	}

	if err := recomputeCurrentInk(ctx, tx, penID); err != nil {
		return nil, err
	}

	e := &model.InkEntry{}
	err = tx.QueryRowContext(ctx,
		`SELECT id, pen_id, ink_name, inked_date, notes, created_at
		 FROM ink_history WHERE id = ?`, id,
	).Scan(&e.ID, &e.PenID, &e.InkName, &e.InkedDate, &e.Notes, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting ink entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing ink entry: %w", err)
	}
	return e, nil
}

// DeleteInkEntry removes an ink history entry (ownership verified through
// the parent pen) and recomputes the pen's current_ink from the remaining
// entries in the same transaction.
func DeleteInkEntry(ctx context.Context, db *sql.DB, userID string, entryID int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var penID int64
	err = tx.QueryRowContext(ctx,
		`SELECT ih.pen_id FROM ink_history ih
		 JOIN pens p ON p.id = ih.pen_id
		 WHERE ih.id = ? AND p.user_id = ?`, entryID, userID,
	).Scan(&penID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking ink entry ownership: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM ink_history WHERE id = ?`, entryID); err != nil {
		return fmt.Errorf("deleting ink entry: %w", err)
	}

	if err := recomputeCurrentInk(ctx, tx, penID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ink entry deletion: %w", err)
	}
	return nil
}

// recomputeCurrentInk sets the pen's current_ink to the ink_name of the most
// recent history entry (by inked_date, then created_at, then id), or "" if
// no history remains.
func recomputeCurrentInk(ctx context.Context, q querier, penID int64) error {
	var current string
	err := q.QueryRowContext(ctx,
		`SELECT ink_name FROM ink_history WHERE pen_id = ?
		 ORDER BY inked_date DESC, created_at DESC, id DESC LIMIT 1`, penID,
	).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("finding latest ink: %w", err)
	}

	_, err = q.ExecContext(ctx,
		`UPDATE pens SET current_ink = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		current, penID,
	)
	if err != nil {
		return fmt.Errorf("updating current ink: %w", err)
	}
	return nil
}

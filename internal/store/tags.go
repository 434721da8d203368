package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ListPenTags returns the tags on one of the user's pens, sorted.
func ListPenTags(ctx context.Context, db *sql.DB, userID string, penID int64) ([]string, error) {
	owned, err := penOwned(ctx, db, userID, penID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotFound
	}

	rows, err := db.QueryContext(ctx,
		`SELECT tag FROM pen_tags WHERE pen_id = ? ORDER BY tag`, penID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pen tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// AddPenTag attaches an already-normalized tag to one of the user's pens.
// Adding a duplicate is a no-op, not an error.
func AddPenTag(ctx context.Context, db *sql.DB, userID string, penID int64, tag string) error {
	owned, err := penOwned(ctx, db, userID, penID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotFound
	}

	_, err = db.ExecContext(ctx,
		`INSERT OR IGNORE INTO pen_tags (pen_id, tag) VALUES (?, ?)`, penID, tag,
	)
	if err != nil {
		return fmt.Errorf("adding pen tag: %w", err)
	}
	return nil
}

// RemovePenTag detaches a tag from one of the user's pens.
func RemovePenTag(ctx context.Context, db *sql.DB, userID string, penID int64, tag string) error {
	owned, err := penOwned(ctx, db, userID, penID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotFound
	}

	_, err = db.ExecContext(ctx,
		`DELETE FROM pen_tags WHERE pen_id = ? AND tag = ?`, penID, tag,
	)
	if err != nil {
		return fmt.Errorf("removing pen tag: %w", err)
	}
	return nil
}

// ReplacePenTags swaps the pen's full tag set in one transaction, so a
// failure partway through cannot leave tags half updated.
func ReplacePenTags(ctx context.Context, db *sql.DB, userID string, penID int64, tags []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	owned, err := penOwned(ctx, tx, userID, penID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM pen_tags WHERE pen_id = ?`, penID); err != nil {
		return fmt.Errorf("clearing pen tags: %w", err)
	}

	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO pen_tags (pen_id, tag) VALUES (?, ?)`, penID, tag,
		); err != nil {
			return fmt.Errorf("inserting pen tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tag replacement: %w", err)
	}
	return nil
}

// ListAllTags returns the distinct tags across all of the user's pens, for
// autocomplete.
func ListAllTags(ctx context.Context, db *sql.DB, userID string) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT pt.tag FROM pen_tags pt
		 JOIN pens p ON p.id = pt.pen_id
		 WHERE p.user_id = ? ORDER BY pt.tag`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing all tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

func scanTags(rows *sql.Rows) ([]string, error) {
	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pentrack/server/internal/model"
)

// ListWritingSamples returns the samples for one of the user's pens,
// newest first.
func ListWritingSamples(ctx context.Context, db *sql.DB, userID string, penID int64) ([]model.WritingSample, error) {
	owned, err := penOwned(ctx, db, userID, penID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotFound
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, pen_id, ink_name, paper, notes, image_url, created_at
		 FROM writing_samples WHERE pen_id = ?
		 ORDER BY created_at DESC`, penID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing writing samples: %w", err)
	}
	defer rows.Close()

	var samples []model.WritingSample
	for rows.Next() {
		var s model.WritingSample
		if err := rows.Scan(&s.ID, &s.PenID, &s.InkName, &s.Paper, &s.Notes, &s.ImageURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning writing sample: %w", err)
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// AddWritingSample appends a writing sample to one of the user's pens.
func AddWritingSample(ctx context.Context, db *sql.DB, userID string, penID int64, inkName, paper, notes, imageURL string) (*model.WritingSample, error) {
	owned, err := penOwned(ctx, db, userID, penID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotFound
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO writing_samples (pen_id, ink_name, paper, notes, image_url)
		 VALUES (?, ?, ?, ?, ?)`,
		penID, inkName, paper, notes, imageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("adding writing sample: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting writing sample id: %w", err)
	}

	s := &model.WritingSample{}
	err = db.QueryRowContext(ctx,
		`SELECT id, pen_id, ink_name, paper, notes, image_url, created_at
		 FROM writing_samples WHERE id = ?`, id,
	).Scan(&s.ID, &s.PenID, &s.InkName, &s.Paper, &s.Notes, &s.ImageURL, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting writing sample: %w", err)
	}
	return s, nil
}

// DeleteWritingSample removes a sample, verifying ownership through the
// parent pen.
func DeleteWritingSample(ctx context.Context, db *sql.DB, userID string, sampleID int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM writing_samples WHERE id = ? AND pen_id IN
		    (SELECT id FROM pens WHERE user_id = ?)`, sampleID, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting writing sample: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pentrack/server/internal/model"
)

const inkBottleColumns = `id, name, brand, color_description, type,
	bottle_size_ml, remaining_pct, notes, swatch_url, created_at`

func scanInkBottle(row interface{ Scan(...any) error }) (*model.InkBottle, error) {
	b := &model.InkBottle{}
	err := row.Scan(&b.ID, &b.Name, &b.Brand, &b.ColorDescription, &b.Type,
		&b.BottleSizeML, &b.RemainingPct, &b.Notes, &b.SwatchURL, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListInkBottles returns the user's ink catalog ordered by brand, then name.
func ListInkBottles(ctx context.Context, db *sql.DB, userID string) ([]model.InkBottle, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+inkBottleColumns+` FROM ink_bottles
		 WHERE user_id = ? ORDER BY brand, name`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing ink bottles: %w", err)
	}
	defer rows.Close()

	var bottles []model.InkBottle
	for rows.Next() {
		b, err := scanInkBottle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ink bottle: %w", err)
		}
		bottles = append(bottles, *b)
	}
	return bottles, rows.Err()
}

// GetInkBottle returns one of the user's ink bottles by ID, or nil if absent
// or foreign-owned.
func GetInkBottle(ctx context.Context, db *sql.DB, userID string, id int64) (*model.InkBottle, error) {
	b, err := scanInkBottle(db.QueryRowContext(ctx,
		`SELECT `+inkBottleColumns+` FROM ink_bottles WHERE id = ? AND user_id = ?`,
		id, userID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting ink bottle: %w", err)
	}
	return b, nil
}

// CreateInkBottle adds a bottle to the user's catalog.
func CreateInkBottle(ctx context.Context, db *sql.DB, userID string, b *model.InkBottle) (*model.InkBottle, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO ink_bottles (user_id, name, brand, color_description, type,
		    bottle_size_ml, remaining_pct, notes, swatch_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, b.Name, b.Brand, b.ColorDescription, b.Type, b.BottleSizeML,
		b.RemainingPct, b.Notes, b.SwatchURL,
	)
	if err != nil {
		return nil, fmt.Errorf("creating ink bottle: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting ink bottle id: %w", err)
	}

	return GetInkBottle(ctx, db, userID, id)
}

// UpdateInkBottle full-replaces all editable fields of the bottle. A nil
// BottleSizeML clears the stored size.
func UpdateInkBottle(ctx context.Context, db *sql.DB, userID string, id int64, b *model.InkBottle) (*model.InkBottle, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE ink_bottles SET name = ?, brand = ?, color_description = ?,
		    type = ?, bottle_size_ml = ?, remaining_pct = ?, notes = ?,
		    swatch_url = ?
		 WHERE id = ? AND user_id = ?`,
		b.Name, b.Brand, b.ColorDescription, b.Type, b.BottleSizeML,
		b.RemainingPct, b.Notes, b.SwatchURL, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating ink bottle: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	return GetInkBottle(ctx, db, userID, id)
}

// InkBottlePatch holds a partial ink bottle update. Nil fields keep their
// stored values; the patch cannot clear bottle_size_ml (use UpdateInkBottle).
type InkBottlePatch struct {
	Name             *string  `json:"name"`
	Brand            *string  `json:"brand"`
	ColorDescription *string  `json:"color_description"`
	Type             *string  `json:"type"`
	BottleSizeML     *float64 `json:"bottle_size_ml"`
	RemainingPct     *int     `json:"remaining_pct"`
	Notes            *string  `json:"notes"`
	SwatchURL        *string  `json:"swatch_url"`
}

// PatchInkBottle merges the patch over the stored row and returns the result.
func PatchInkBottle(ctx context.Context, db *sql.DB, userID string, id int64, patch *InkBottlePatch) (*model.InkBottle, error) {
	current, err := GetInkBottle(ctx, db, userID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.Brand != nil {
		current.Brand = *patch.Brand
	}
	if patch.ColorDescription != nil {
		current.ColorDescription = *patch.ColorDescription
	}
	if patch.Type != nil {
		current.Type = *patch.Type
	}
	if patch.BottleSizeML != nil {
		current.BottleSizeML = patch.BottleSizeML
	}
	if patch.RemainingPct != nil {
		current.RemainingPct = *patch.RemainingPct
	}
	if patch.Notes != nil {
		current.Notes = *patch.Notes
	}
	if patch.SwatchURL != nil {
		current.SwatchURL = *patch.SwatchURL
	}

	return UpdateInkBottle(ctx, db, userID, id, current)
}

// DeleteInkBottle removes a bottle from the user's catalog.
func DeleteInkBottle(ctx context.Context, db *sql.DB, userID string, id int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM ink_bottles WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting ink bottle: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

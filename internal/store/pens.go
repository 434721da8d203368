package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pentrack/server/internal/model"
)

const penColumns = `id, brand, model, color, nib_size, nib_material, nib_type,
	fill_system, date_purchased, purchase_price, purchase_location, current_ink,
	condition, notes, image_url, rating, is_daily_carry, provenance,
	storage_location, created_at, updated_at`

func scanPen(row interface{ Scan(...any) error }) (*model.Pen, error) {
	p := &model.Pen{}
	var dailyCarry int
	err := row.Scan(&p.ID, &p.Brand, &p.Model, &p.Color, &p.NibSize, &p.NibMaterial,
		&p.NibType, &p.FillSystem, &p.DatePurchased, &p.PurchasePrice,
		&p.PurchaseLocation, &p.CurrentInk, &p.Condition, &p.Notes, &p.ImageURL,
		&p.Rating, &dailyCarry, &p.Provenance, &p.StorageLocation,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.IsDailyCarry = dailyCarry != 0
	return p, nil
}

// ListPens returns all of a user's pens, newest first.
func ListPens(ctx context.Context, db *sql.DB, userID string) ([]model.Pen, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+penColumns+` FROM pens
		 WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pens: %w", err)
	}
	defer rows.Close()

	var pens []model.Pen
	for rows.Next() {
		p, err := scanPen(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pen: %w", err)
		}
		pens = append(pens, *p)
	}
	return pens, rows.Err()
}

// GetPen returns one of the user's pens by ID, or nil if the pen does not
// exist or belongs to someone else.
func GetPen(ctx context.Context, db *sql.DB, userID string, id int64) (*model.Pen, error) {
	p, err := scanPen(db.QueryRowContext(ctx,
		`SELECT `+penColumns+` FROM pens WHERE id = ? AND user_id = ?`, id, userID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting pen: %w", err)
	}
	return p, nil
}

// CreatePen inserts a fully-populated pen record owned by the user and
// returns the created row. Callers normalize input (defaults, rating clamp)
// before calling.
func CreatePen(ctx context.Context, db *sql.DB, userID string, p *model.Pen) (*model.Pen, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO pens (user_id, brand, model, color, nib_size, nib_material,
		    nib_type, fill_system, date_purchased, purchase_price,
		    purchase_location, condition, notes, image_url, rating,
		    is_daily_carry, provenance, storage_location)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, p.Brand, p.Model, p.Color, p.NibSize, p.NibMaterial, p.NibType,
		p.FillSystem, p.DatePurchased, p.PurchasePrice, p.PurchaseLocation,
		p.Condition, p.Notes, p.ImageURL, p.Rating, boolToInt(p.IsDailyCarry),
		p.Provenance, p.StorageLocation,
	)
	if err != nil {
		return nil, fmt.Errorf("creating pen: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting pen id: %w", err)
	}

	return GetPen(ctx, db, userID, id)
}

// UpdatePen full-replaces all editable fields of the user's pen and
// refreshes updated_at. current_ink is not editable here; it only changes
// through ink history writes.
func UpdatePen(ctx context.Context, db *sql.DB, userID string, id int64, p *model.Pen) (*model.Pen, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE pens SET brand = ?, model = ?, color = ?, nib_size = ?,
		    nib_material = ?, nib_type = ?, fill_system = ?, date_purchased = ?,
		    purchase_price = ?, purchase_location = ?, condition = ?, notes = ?,
		    image_url = ?, rating = ?, is_daily_carry = ?, provenance = ?,
		    storage_location = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		p.Brand, p.Model, p.Color, p.NibSize, p.NibMaterial, p.NibType,
		p.FillSystem, p.DatePurchased, p.PurchasePrice, p.PurchaseLocation,
		p.Condition, p.Notes, p.ImageURL, p.Rating, boolToInt(p.IsDailyCarry),
		p.Provenance, p.StorageLocation, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating pen: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	return GetPen(ctx, db, userID, id)
}

// DeletePen permanently deletes the user's pen. Ink history, tags,
// maintenance entries and writing samples cascade in the same statement, so
// a crash cannot orphan child rows.
func DeletePen(ctx context.Context, db *sql.DB, userID string, id int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM pens WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting pen: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPenImageURL updates just the pen's image URL.
func SetPenImageURL(ctx context.Context, db *sql.DB, userID string, id int64, url string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE pens SET image_url = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`, url, id, userID,
	)
	if err != nil {
		return fmt.Errorf("setting pen image: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

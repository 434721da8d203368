package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pentrack/server/internal/model"
)

const wishlistColumns = `id, brand, model, notes, url, estimated_price,
	priority, acquired, created_at`

func scanWishlistItem(row interface{ Scan(...any) error }) (*model.WishlistItem, error) {
	w := &model.WishlistItem{}
	var acquired int
	err := row.Scan(&w.ID, &w.Brand, &w.Model, &w.Notes, &w.URL,
		&w.EstimatedPrice, &w.Priority, &acquired, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	w.Acquired = acquired != 0
	return w, nil
}

// ListWishlist returns the user's wishlist, newest first. Grouping by
// priority is a client concern.
func ListWishlist(ctx context.Context, db *sql.DB, userID string) ([]model.WishlistItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+wishlistColumns+` FROM wishlist
		 WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing wishlist: %w", err)
	}
	defer rows.Close()

	var items []model.WishlistItem
	for rows.Next() {
		w, err := scanWishlistItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning wishlist item: %w", err)
		}
		items = append(items, *w)
	}
	return items, rows.Err()
}

// GetWishlistItem returns one of the user's wishlist items by ID, or nil if
// absent or foreign-owned.
func GetWishlistItem(ctx context.Context, db *sql.DB, userID string, id int64) (*model.WishlistItem, error) {
	w, err := scanWishlistItem(db.QueryRowContext(ctx,
		`SELECT `+wishlistColumns+` FROM wishlist WHERE id = ? AND user_id = ?`,
		id, userID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting wishlist item: %w", err)
	}
	return w, nil
}

// CreateWishlistItem adds an item to the user's wishlist.
func CreateWishlistItem(ctx context.Context, db *sql.DB, userID string, w *model.WishlistItem) (*model.WishlistItem, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO wishlist (user_id, brand, model, notes, url,
		    estimated_price, priority, acquired)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, w.Brand, w.Model, w.Notes, w.URL, w.EstimatedPrice,
		w.Priority, boolToInt(w.Acquired),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wishlist item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting wishlist item id: %w", err)
	}

	return GetWishlistItem(ctx, db, userID, id)
}

// UpdateWishlistItem full-replaces all editable fields of the item,
// including the acquired flag.
func UpdateWishlistItem(ctx context.Context, db *sql.DB, userID string, id int64, w *model.WishlistItem) (*model.WishlistItem, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE wishlist SET brand = ?, model = ?, notes = ?, url = ?,
		    estimated_price = ?, priority = ?, acquired = ?
		 WHERE id = ? AND user_id = ?`,
		w.Brand, w.Model, w.Notes, w.URL, w.EstimatedPrice, w.Priority,
		boolToInt(w.Acquired), id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating wishlist item: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	return GetWishlistItem(ctx, db, userID, id)
}

// DeleteWishlistItem removes an item from the user's wishlist.
func DeleteWishlistItem(ctx context.Context, db *sql.DB, userID string, id int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM wishlist WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting wishlist item: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

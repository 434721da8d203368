package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pentrack/server/internal/model"
)

// GetStats computes the aggregate view of one user's collection. Read-only;
// nothing is persisted. Empty groupings come back as empty slices, and an
// empty collection yields zero counts without error.
func GetStats(ctx context.Context, db *sql.DB, userID string) (*model.Stats, error) {
	stats := &model.Stats{}

	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(purchase_price), 0),
		        COALESCE(AVG(CASE WHEN rating > 0 THEN rating END), 0)
		 FROM pens WHERE user_id = ?`, userID,
	).Scan(&stats.TotalPens, &stats.TotalValue, &stats.AvgRating)
	if err != nil {
		return nil, fmt.Errorf("computing pen totals: %w", err)
	}

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ink_bottles WHERE user_id = ?`, userID,
	).Scan(&stats.TotalInkBottles)
	if err != nil {
		return nil, fmt.Errorf("counting ink bottles: %w", err)
	}

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM wishlist WHERE user_id = ? AND acquired = 0`, userID,
	).Scan(&stats.WishlistCount)
	if err != nil {
		return nil, fmt.Errorf("counting wishlist items: %w", err)
	}

	stats.ByBrand, err = queryBrandCounts(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	stats.ByNibSize, err = queryNibSizeCounts(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	stats.MostUsedInks, err = queryInkUsage(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	stats.MostActivePens, err = queryMostActivePens(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	stats.LowStockInks, err = queryLowStockInks(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func queryBrandCounts(ctx context.Context, db *sql.DB, userID string) ([]model.BrandCount, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT brand, COUNT(*) AS count FROM pens
		 WHERE user_id = ? AND brand != ''
		 GROUP BY brand ORDER BY count DESC LIMIT 10`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("grouping pens by brand: %w", err)
	}
	defer rows.Close()

	var counts []model.BrandCount
	for rows.Next() {
		var c model.BrandCount
		if err := rows.Scan(&c.Brand, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning brand count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func queryNibSizeCounts(ctx context.Context, db *sql.DB, userID string) ([]model.NibSizeCount, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT nib_size, COUNT(*) AS count FROM pens
		 WHERE user_id = ? AND nib_size != ''
		 GROUP BY nib_size ORDER BY count DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("grouping pens by nib size: %w", err)
	}
	defer rows.Close()

	var counts []model.NibSizeCount
	for rows.Next() {
		var c model.NibSizeCount
		if err := rows.Scan(&c.NibSize, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning nib size count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// queryInkUsage joins through pens so only the user's own history counts.
func queryInkUsage(ctx context.Context, db *sql.DB, userID string) ([]model.InkUsage, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT ih.ink_name, COUNT(*) AS count FROM ink_history ih
		 JOIN pens p ON p.id = ih.pen_id
		 WHERE p.user_id = ? AND ih.ink_name != ''
		 GROUP BY ih.ink_name ORDER BY count DESC LIMIT 10`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("grouping ink usage: %w", err)
	}
	defer rows.Close()

	var usage []model.InkUsage
	for rows.Next() {
		var u model.InkUsage
		if err := rows.Scan(&u.InkName, &u.Count); err != nil {
			return nil, fmt.Errorf("scanning ink usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func queryMostActivePens(ctx context.Context, db *sql.DB, userID string) ([]model.PenInkChanges, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT p.id, p.brand, p.model, COUNT(ih.id) AS ink_changes
		 FROM pens p
		 LEFT JOIN ink_history ih ON ih.pen_id = p.id
		 WHERE p.user_id = ?
		 GROUP BY p.id ORDER BY ink_changes DESC LIMIT 5`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ranking pens by ink changes: %w", err)
	}
	defer rows.Close()

	var pens []model.PenInkChanges
	for rows.Next() {
		var p model.PenInkChanges
		if err := rows.Scan(&p.ID, &p.Brand, &p.Model, &p.InkChanges); err != nil {
			return nil, fmt.Errorf("scanning pen activity: %w", err)
		}
		pens = append(pens, p)
	}
	return pens, rows.Err()
}

func queryLowStockInks(ctx context.Context, db *sql.DB, userID string) ([]model.InkBottle, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+inkBottleColumns+` FROM ink_bottles
		 WHERE user_id = ? AND remaining_pct <= 25
		 ORDER BY remaining_pct ASC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing low stock inks: %w", err)
	}
	defer rows.Close()

	var bottles []model.InkBottle
	for rows.Next() {
		b, err := scanInkBottle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning low stock ink: %w", err)
		}
		bottles = append(bottles, *b)
	}
	return bottles, rows.Err()
}

package model

// Stats is the aggregate view of one user's collection, computed on demand.
type Stats struct {
	TotalPens       int             `json:"total_pens"`
	TotalValue      float64         `json:"total_value"`
	AvgRating       float64         `json:"avg_rating"`
	TotalInkBottles int             `json:"total_ink_bottles"`
	WishlistCount   int             `json:"wishlist_count"`
	ByBrand         []BrandCount    `json:"by_brand"`
	ByNibSize       []NibSizeCount  `json:"by_nib_size"`
	MostUsedInks    []InkUsage      `json:"most_used_inks"`
	MostActivePens  []PenInkChanges `json:"most_active_pens"`
	LowStockInks    []InkBottle     `json:"low_stock_inks"`
}

// BrandCount is one row of the pens-per-brand grouping.
type BrandCount struct {
	Brand string `json:"brand"`
	Count int    `json:"count"`
}

// NibSizeCount is one row of the nib-size distribution.
type NibSizeCount struct {
	NibSize string `json:"nib_size"`
	Count   int    `json:"count"`
}

// InkUsage is one row of the most-used-inks grouping.
type InkUsage struct {
	InkName string `json:"ink_name"`
	Count   int    `json:"count"`
}

// PenInkChanges ranks a pen by how often it has been re-inked.
type PenInkChanges struct {
	ID         int64  `json:"id"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	InkChanges int    `json:"ink_changes"`
}

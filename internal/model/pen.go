package model

import "time"

// Pen represents a fountain pen in a user's collection.
//
// CurrentInk is a cached denormalization: it always mirrors the ink_name of
// the most recent ink history entry (by inked_date, then created_at) and is
// recomputed on every history insert or delete.
type Pen struct {
	ID               int64     `json:"id"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Color            string    `json:"color"`
	NibSize          string    `json:"nib_size"`
	NibMaterial      string    `json:"nib_material"`
	NibType          string    `json:"nib_type"`
	FillSystem       string    `json:"fill_system"`
	DatePurchased    string    `json:"date_purchased"`
	PurchasePrice    *float64  `json:"purchase_price"`
	PurchaseLocation string    `json:"purchase_location"`
	CurrentInk       string    `json:"current_ink"`
	Condition        string    `json:"condition"`
	Notes            string    `json:"notes"`
	ImageURL         string    `json:"image_url"`
	Rating           int       `json:"rating"`
	IsDailyCarry     bool      `json:"is_daily_carry"`
	Provenance       string    `json:"provenance"`
	StorageLocation  string    `json:"storage_location"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// InkEntry is one append-only record of an ink loaded into a pen.
type InkEntry struct {
	ID        int64     `json:"id"`
	PenID     int64     `json:"pen_id"`
	InkName   string    `json:"ink_name"`
	InkedDate string    `json:"inked_date"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// MaintenanceEntry is one append-only service log record for a pen.
type MaintenanceEntry struct {
	ID        int64     `json:"id"`
	PenID     int64     `json:"pen_id"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// WritingSample is an append-only sample record, optionally with an image.
type WritingSample struct {
	ID        int64     `json:"id"`
	PenID     int64     `json:"pen_id"`
	InkName   string    `json:"ink_name"`
	Paper     string    `json:"paper"`
	Notes     string    `json:"notes"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

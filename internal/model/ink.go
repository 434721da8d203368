package model

import "time"

// InkBottle is a catalog entry for a bottle of ink. It is linked to pens by
// ink name only (free text, no foreign key).
type InkBottle struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Brand            string    `json:"brand"`
	ColorDescription string    `json:"color_description"`
	Type             string    `json:"type"`
	BottleSizeML     *float64  `json:"bottle_size_ml"`
	RemainingPct     int       `json:"remaining_pct"`
	Notes            string    `json:"notes"`
	SwatchURL        string    `json:"swatch_url"`
	CreatedAt        time.Time `json:"created_at"`
}

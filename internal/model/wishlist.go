package model

import "time"

// WishlistItem is a pen the user wants but does not own. Not linked to pens.
type WishlistItem struct {
	ID             int64     `json:"id"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Notes          string    `json:"notes"`
	URL            string    `json:"url"`
	EstimatedPrice *float64  `json:"estimated_price"`
	Priority       string    `json:"priority"`
	Acquired       bool      `json:"acquired"`
	CreatedAt      time.Time `json:"created_at"`
}

// Wishlist priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityGrail  = "grail"
)

// ValidPriority reports whether p is a known wishlist priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityGrail:
		return true
	}
	return false
}

// Package identify asks a vision model to guess a pen's details from a photo.
package identify

import "context"

// Guess is a best-effort structured identification of a pen. Fields the
// model cannot determine are empty strings.
type Guess struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	NibSize     string `json:"nib_size"`
	NibMaterial string `json:"nib_material"`
	NibType     string `json:"nib_type"`
	FillSystem  string `json:"fill_system"`
}

// Identifier identifies a pen from raw image bytes. Implementations make a
// single outbound call; callers treat any error as "no identification" and
// carry on.
type Identifier interface {
	Identify(ctx context.Context, image []byte, mime string) (*Guess, error)
}

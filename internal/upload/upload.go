// Package upload is the image store: processed image bytes in, a servable
// URL out. Files live in a flat directory served under /uploads/.
package upload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pentrack/server/internal/imaging"
)

// Store writes images to a directory and hands back their public URLs.
type Store struct {
	dir string
}

// NewStore creates the uploads directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing the store, for the static file server.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes a processed image under a random name and returns its URL path.
func (s *Store) Save(img *imaging.Processed) (string, error) {
	name := uuid.NewString() + extensionFor(img.MIME)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}

	return "/uploads/" + name, nil
}

func extensionFor(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	default:
		return ".jpg"
	}
}

package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL DEFAULT '',
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    image         TEXT NOT NULL DEFAULT '',
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS pens (
    id                INTEGER PRIMARY KEY,
    user_id           TEXT NOT NULL REFERENCES users(id),
    brand             TEXT NOT NULL DEFAULT '',
    model             TEXT NOT NULL DEFAULT '',
    color             TEXT NOT NULL DEFAULT '',
    nib_size          TEXT NOT NULL DEFAULT '',
    nib_material      TEXT NOT NULL DEFAULT '',
    nib_type          TEXT NOT NULL DEFAULT '',
    fill_system       TEXT NOT NULL DEFAULT '',
    date_purchased    TEXT NOT NULL DEFAULT '',
    purchase_price    REAL,
    purchase_location TEXT NOT NULL DEFAULT '',
    current_ink       TEXT NOT NULL DEFAULT '',
    condition         TEXT NOT NULL DEFAULT '',
    notes             TEXT NOT NULL DEFAULT '',
    image_url         TEXT NOT NULL DEFAULT '',
    rating            INTEGER NOT NULL DEFAULT 0 CHECK (rating BETWEEN 0 AND 5),
    created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_pens_user ON pens(user_id);

CREATE TABLE IF NOT EXISTS ink_history (
    id         INTEGER PRIMARY KEY,
    pen_id     INTEGER NOT NULL REFERENCES pens(id) ON DELETE CASCADE,
    ink_name   TEXT NOT NULL,
    inked_date TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_ink_history_pen ON ink_history(pen_id);

CREATE TABLE IF NOT EXISTS ink_bottles (
    id                INTEGER PRIMARY KEY,
    user_id           TEXT NOT NULL REFERENCES users(id),
    name              TEXT NOT NULL,
    brand             TEXT NOT NULL DEFAULT '',
    color_description TEXT NOT NULL DEFAULT '',
    type              TEXT NOT NULL DEFAULT '',
    bottle_size_ml    REAL,
    remaining_pct     INTEGER NOT NULL DEFAULT 100 CHECK (remaining_pct BETWEEN 0 AND 100),
    notes             TEXT NOT NULL DEFAULT '',
    swatch_url        TEXT NOT NULL DEFAULT '',
    created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_ink_bottles_user ON ink_bottles(user_id);

CREATE TABLE IF NOT EXISTS pen_tags (
    pen_id INTEGER NOT NULL REFERENCES pens(id) ON DELETE CASCADE,
    tag    TEXT NOT NULL,
    UNIQUE (pen_id, tag)
);

CREATE TABLE IF NOT EXISTS maintenance_log (
    id         INTEGER PRIMARY KEY,
    pen_id     INTEGER NOT NULL REFERENCES pens(id) ON DELETE CASCADE,
    type       TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    date       TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS writing_samples (
    id         INTEGER PRIMARY KEY,
    pen_id     INTEGER NOT NULL REFERENCES pens(id) ON DELETE CASCADE,
    ink_name   TEXT NOT NULL DEFAULT '',
    paper      TEXT NOT NULL DEFAULT '',
    notes      TEXT NOT NULL DEFAULT '',
    image_url  TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS wishlist (
    id              INTEGER PRIMARY KEY,
    user_id         TEXT NOT NULL REFERENCES users(id),
    brand           TEXT NOT NULL,
    model           TEXT NOT NULL DEFAULT '',
    notes           TEXT NOT NULL DEFAULT '',
    url             TEXT NOT NULL DEFAULT '',
    estimated_price REAL,
    priority        TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low', 'medium', 'high', 'grail')),
    acquired        INTEGER NOT NULL DEFAULT 0,
    created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_wishlist_user ON wishlist(user_id);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

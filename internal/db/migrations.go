package db

import (
	"database/sql"
	"fmt"
)

// columnMigrations lists columns added after the initial schema shipped.
// Schema evolution is additive only: new nullable-or-defaulted columns,
// never drops or rewrites. Append new entries at the end.
var columnMigrations = []struct {
	table  string
	column string
	ddl    string
}{
	// Daily-carry flag, provenance and storage location were added to pens
	// after the first release.
	{"pens", "is_daily_carry", `ALTER TABLE pens ADD COLUMN is_daily_carry INTEGER NOT NULL DEFAULT 0`},
	{"pens", "provenance", `ALTER TABLE pens ADD COLUMN provenance TEXT NOT NULL DEFAULT ''`},
	{"pens", "storage_location", `ALTER TABLE pens ADD COLUMN storage_location TEXT NOT NULL DEFAULT ''`},
}

// Migrate creates the schema and applies additive column migrations.
// Safe to run on every start.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for _, m := range columnMigrations {
		ok, err := hasColumn(db, m.table, m.column)
		if err != nil {
			return fmt.Errorf("checking column %s.%s: %w", m.table, m.column, err)
		}
		if ok {
			continue
		}
		if _, err := db.Exec(m.ddl); err != nil {
			return fmt.Errorf("adding column %s.%s: %w", m.table, m.column, err)
		}
	}

	return nil
}

// hasColumn reports whether a table already has the named column.
// ALTER TABLE ADD COLUMN is not idempotent in SQLite, so migrations
// check before altering.
func hasColumn(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notnull    int
			dflt       sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notnull, &dflt, &primaryKey); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

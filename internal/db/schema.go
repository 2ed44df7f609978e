package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    id             TEXT PRIMARY KEY,
    position       INTEGER NOT NULL,
    title          TEXT NOT NULL,
    slug           TEXT NOT NULL UNIQUE,
    type           TEXT NOT NULL CHECK (type IN ('whisky', 'wine', 'vodka', 'cigar')),
    origin_country TEXT NOT NULL DEFAULT '',
    price_min      REAL NOT NULL DEFAULT 0,
    price_max      REAL NOT NULL DEFAULT 0,
    abv            REAL,
    description    TEXT NOT NULL DEFAULT '',
    tasting_notes  TEXT NOT NULL DEFAULT '',
    image_url      TEXT NOT NULL DEFAULT '',
    affiliate_url  TEXT NOT NULL DEFAULT '',
    available      INTEGER NOT NULL DEFAULT 1,
    image          BLOB,
    image_mime     TEXT,
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// migrations are applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: catalog order lookups.
	`CREATE INDEX IF NOT EXISTS idx_products_position ON products(position)`,
}

// EnsureSchema creates all tables and indexes if they don't already exist
// and applies pending migrations.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}

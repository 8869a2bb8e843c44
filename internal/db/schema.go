package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh lister databases.
// It reflects the state after all migrations have run.
//
// Tests load it through GetSchemaSQL() instead of declaring their own
// tables, so repository code that drifts from this schema fails with
// "no such column" at test time.
//
// When adding a table or column:
//  1. Append a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- People list (record store "personas")
CREATE TABLE IF NOT EXISTS personas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	apellido TEXT NOT NULL DEFAULT '',
	ciudad TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_personas_name ON personas(name);
CREATE INDEX IF NOT EXISTS idx_personas_apellido ON personas(apellido);
CREATE INDEX IF NOT EXISTS idx_personas_ciudad ON personas(ciudad);

-- Shopping list (record store "productos")
CREATE TABLE IF NOT EXISTS productos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	brand TEXT NOT NULL DEFAULT '',
	quantity REAL NOT NULL DEFAULT 0,
	unit_price REAL NOT NULL DEFAULT 0,
	subtotal REAL NOT NULL DEFAULT 0,
	purchased INTEGER NOT NULL DEFAULT 0 CHECK(purchased IN (0, 1)),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_productos_name ON productos(name);
CREATE INDEX IF NOT EXISTS idx_productos_brand ON productos(brand);

-- Key/value settings (budget lives here, not in a record store)
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema defines the schema exactly once.
// A database without a schema_version table is treated as fresh: the full
// schema is created and every migration is marked as applied. Any later
// open only runs migrations newer than the recorded version.
func InitSchema(db *sql.DB) error {
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(db)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := tx.Exec(schemaVersionSQL); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	for _, m := range migrations {
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return tx.Commit()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}

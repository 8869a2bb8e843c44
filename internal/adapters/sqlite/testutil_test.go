// Package sqlite_test contains integration tests for SQLite repositories.
//
// All setup goes through setupTestDB, which loads db.GetSchemaSQL() so the
// tests run against the authoritative schema. Do not declare tables here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/lister/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every new connection would get its own empty :memory: database.
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPerson inserts a test person and returns its id.
func seedPerson(t *testing.T, db *sql.DB, name, apellido, ciudad string) int64 {
	t.Helper()
	result, err := db.Exec("INSERT INTO personas (name, apellido, ciudad) VALUES (?, ?, ?)", name, apellido, ciudad)
	if err != nil {
		t.Fatalf("failed to seed person: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedProduct inserts a test product and returns its id.
func seedProduct(t *testing.T, db *sql.DB, name string, quantity, unitPrice float64, purchased bool) int64 {
	t.Helper()
	result, err := db.Exec(
		"INSERT INTO productos (name, brand, quantity, unit_price, subtotal, purchased) VALUES (?, 'X', ?, ?, ?, ?)",
		name, quantity, unitPrice, quantity*unitPrice, purchased,
	)
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

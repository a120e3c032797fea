// Package testutil provides shared fixtures for package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/minitrello/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SeedValue writes a raw value into the kv_store table
func SeedValue(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if err := database.NewKVRepo(db).Put(context.Background(), key, value); err != nil {
		t.Fatalf("Failed to seed key %q: %v", key, err)
	}
}

// ReadValue returns the raw value stored under key, failing the test if absent
func ReadValue(t *testing.T, db *sql.DB, key string) string {
	t.Helper()
	value, ok, err := database.NewKVRepo(db).Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Failed to read key %q: %v", key, err)
	}
	if !ok {
		t.Fatalf("Key %q not found", key)
	}
	return value
}

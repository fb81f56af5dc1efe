// Package databasetest provides migrated in-memory databases for tests.
package databasetest

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"taskly-be/internal/database"
	"taskly-be/internal/logging"
)

// Open returns a fresh, fully migrated in-memory SQLite database that is
// closed when the test finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	logger := logging.Discard()
	db, err := database.NewConnection(context.Background(), database.DriverSQLite, "file::memory:", logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Logf("close test database: %v", err)
		}
	})

	if err := database.RunMigrations(db, database.DriverSQLite, logger); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

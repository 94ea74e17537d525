// Package testutil provides test helpers for setting up in-memory session
// stores, creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"assetboard/internal/database"

	"gorm.io/gorm"
)

// SetupTestDB creates a migrated in-memory SQLite store private to the
// calling test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", nextID())
	m, err := database.NewManager(database.Options{DSN: dsn})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := m.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return m.DB()
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

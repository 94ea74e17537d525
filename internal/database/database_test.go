package database

import (
	"testing"

	"assetboard/internal/models"
)

func TestManager_MigrateAndClose(t *testing.T) {
	m, err := NewManager(Options{DSN: "file:database_pkg_test?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	for _, model := range []interface{}{&models.Session{}, &models.Dataset{}, &models.AssetRecord{}} {
		if !m.DB().Migrator().HasTable(model) {
			t.Errorf("expected table for %T", model)
		}
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

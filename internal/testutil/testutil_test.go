package testutil_test

import (
	"testing"
	"time"

	"assetboard/internal/errors"
	"assetboard/internal/models"
	"assetboard/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"sessions", "datasets", "asset_records"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestSession(t, first)

	var count int64
	if err := second.Model(&models.Session{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected an empty second database, found %d sessions", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	session := testutil.CreateTestSession(t, db)
	if session.ID == "" {
		t.Fatal("session should have an ID")
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Error("session should expire in the future")
	}

	dataset := testutil.CreateTestDataset(t, db, session.ID, testutil.StockAndCashRecords())
	if dataset.RecordCount != 4 || dataset.InvestorCount != 2 {
		t.Errorf("expected 4 records and 2 investors, got %d and %d", dataset.RecordCount, dataset.InvestorCount)
	}

	var rows []models.AssetRecord
	if err := db.Where("dataset_id = ?", dataset.ID).Order("row_num").Find(&rows).Error; err != nil {
		t.Fatalf("query records: %v", err)
	}
	if len(rows) != 4 || rows[2].Name != "Gamma" || rows[2].Row != 2 {
		t.Errorf("records not stored in order: %+v", rows)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.Wrap(errors.ErrInvalidDataset, nil), "INVALID_DATASET")
	testutil.AssertAppError(t, errors.ErrSessionNotFound, "SESSION_NOT_FOUND")
}

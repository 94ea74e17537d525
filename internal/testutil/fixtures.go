package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"assetboard/internal/analytics"
	"assetboard/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestSession creates a session that expires in an hour.
func CreateTestSession(t *testing.T, db *gorm.DB) *models.Session {
	t.Helper()
	return CreateTestSessionExpiring(t, db, time.Now().Add(time.Hour))
}

// CreateTestSessionExpiring creates a session with the given expiry.
func CreateTestSessionExpiring(t *testing.T, db *gorm.DB, expiresAt time.Time) *models.Session {
	t.Helper()

	session := &models.Session{ExpiresAt: expiresAt}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}
	return session
}

// CreateTestDataset stores records as the session's dataset.
func CreateTestDataset(t *testing.T, db *gorm.DB, sessionID string, records []models.AssetRecord) *models.Dataset {
	t.Helper()

	dataset := &models.Dataset{
		SessionID:     sessionID,
		Name:          fmt.Sprintf("fixture-%d.csv", nextID()),
		Format:        models.DatasetFormatCSV,
		RecordCount:   len(records),
		InvestorCount: len(analytics.Investors(records)),
	}
	if err := db.Create(dataset).Error; err != nil {
		t.Fatalf("failed to create test dataset: %v", err)
	}

	if len(records) == 0 {
		return dataset
	}
	rows := make([]models.AssetRecord, len(records))
	for i, r := range records {
		r.ID = 0
		r.DatasetID = dataset.ID
		r.Row = i
		rows[i] = r
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("failed to create test records: %v", err)
	}
	return dataset
}

// StockAndCashRecords returns investor "A" holding two stocks and cash,
// plus one position held by investor "B".
//
// For "A": ending total 350000, contribution total 80000, stock 300000
// and cash 50000 by classification.
func StockAndCashRecords() []models.AssetRecord {
	return []models.AssetRecord{
		{Investor: "A", Name: "Alpha", Currency: "KRW", Classification: "stock", Sector: "tech",
			BeginValue: 150000, EndValue: 200000, Contribution: 100000, ReturnRate: 33.3},
		{Investor: "B", Name: "Beta", Currency: "USD", Classification: "bond", Sector: "rates",
			BeginValue: 1000, EndValue: 900, Contribution: -100, ReturnRate: -10},
		{Investor: "A", Name: "Gamma", Currency: "KRW", Classification: "stock", Sector: "retail",
			BeginValue: 120000, EndValue: 100000, Contribution: -20000, ReturnRate: -16.7},
		{Investor: "A", Name: "Cash", Currency: "KRW", Classification: "cash", Sector: "cash",
			BeginValue: 50000, EndValue: 50000},
	}
}

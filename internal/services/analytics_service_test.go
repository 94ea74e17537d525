package services

import (
	"testing"
	"time"

	"assetboard/internal/analytics"
	"assetboard/internal/testutil"
)

func newAnalyticsFixture(t *testing.T) (AnalyticsServicer, string, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	sessions := NewSessionService(db, time.Hour)
	session := testutil.CreateTestSession(t, db)
	testutil.CreateTestDataset(t, db, session.ID, testutil.StockAndCashRecords())

	svc := NewAnalyticsService(NewDatasetService(db, sessions))
	return svc, session.ID, func() { testutil.TeardownTestDB(t, db) }
}

func TestGetSummary(t *testing.T) {
	svc, sessionID, teardown := newAnalyticsFixture(t)
	defer teardown()

	summary, err := svc.GetSummary(sessionID, "A")
	testutil.AssertNoError(t, err)
	testutil.AssertFloat(t, "total ending", 350000, summary.TotalEnding)
	testutil.AssertFloat(t, "total contribution", 80000, summary.TotalContribution)
	testutil.AssertFloat(t, "growth rate", 9.375, summary.GrowthRate)

	unknown, err := svc.GetSummary(sessionID, "nobody")
	testutil.AssertNoError(t, err)
	if *unknown != (analytics.Summary{}) {
		t.Errorf("expected a zero summary, got %+v", unknown)
	}
}

func TestGetRankings(t *testing.T) {
	svc, sessionID, teardown := newAnalyticsFixture(t)
	defer teardown()

	entries, err := svc.GetRankings(sessionID, "A", analytics.MetricContribution)
	testutil.AssertNoError(t, err)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Alpha" || entries[1].Name != "Gamma" || entries[1].Tag != analytics.TagLoss {
		t.Errorf("unexpected ranking: %+v", entries)
	}
}

func TestGetBreakdown(t *testing.T) {
	svc, sessionID, teardown := newAnalyticsFixture(t)
	defer teardown()

	root, err := svc.GetBreakdown(sessionID, "A", analytics.GroupByClassification, analytics.MetricCurrent)
	testutil.AssertNoError(t, err)
	if len(root.Children) != 2 {
		t.Fatalf("expected stock and cash groups, got %+v", root.Children)
	}
	testutil.AssertFloat(t, "stock", 300000, root.Children[0].Magnitude)
	testutil.AssertFloat(t, "cash", 50000, root.Children[1].Magnitude)
}

func TestGetDashboard(t *testing.T) {
	svc, sessionID, teardown := newAnalyticsFixture(t)
	defer teardown()

	d, err := svc.GetDashboard(sessionID, "A")
	testutil.AssertNoError(t, err)
	if len(d.Records) != 3 || len(d.CurrentRanking) != 3 {
		t.Errorf("expected 3 records and 3 ranked entries, got %d and %d", len(d.Records), len(d.CurrentRanking))
	}
	if d.Breakdowns.SectorCurrent.Name != "Sector" {
		t.Errorf("expected sector root, got %q", d.Breakdowns.SectorCurrent.Name)
	}
}

func TestAnalytics_NoDataset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	sessions := NewSessionService(db, time.Hour)
	session := testutil.CreateTestSession(t, db)
	svc := NewAnalyticsService(NewDatasetService(db, sessions))

	_, err := svc.GetDashboard(session.ID, "A")
	testutil.AssertAppError(t, err, "DATASET_NOT_LOADED")
}

package services

import (
	"assetboard/internal/analytics"
	"assetboard/internal/models"
)

// analyticsService derives the investor views of a session's dataset.
// Every call reads the records afresh and recomputes.
type analyticsService struct {
	datasets DatasetServicer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(datasets DatasetServicer) AnalyticsServicer {
	return &analyticsService{datasets: datasets}
}

func (s *analyticsService) investorRecords(sessionID, investor string) ([]models.AssetRecord, error) {
	records, err := s.datasets.GetRecords(sessionID)
	if err != nil {
		return nil, err
	}
	return analytics.FilterByInvestor(records, investor), nil
}

// GetSummary returns the totals of one investor.
func (s *analyticsService) GetSummary(sessionID, investor string) (*analytics.Summary, error) {
	records, err := s.investorRecords(sessionID, investor)
	if err != nil {
		return nil, err
	}
	summary := analytics.Summarize(records)
	return &summary, nil
}

// GetRankings returns one investor's positions ranked by metric.
func (s *analyticsService) GetRankings(sessionID, investor string, metric analytics.Metric) ([]analytics.RankedEntry, error) {
	records, err := s.investorRecords(sessionID, investor)
	if err != nil {
		return nil, err
	}
	return analytics.Rank(records, metric), nil
}

// GetBreakdown returns one investor's two-level breakdown.
func (s *analyticsService) GetBreakdown(sessionID, investor string, key analytics.GroupKey, metric analytics.Metric) (*analytics.GroupNode, error) {
	records, err := s.investorRecords(sessionID, investor)
	if err != nil {
		return nil, err
	}
	root := analytics.BuildBreakdown(records, key, metric)
	return &root, nil
}

// GetDashboard returns every view of one investor.
func (s *analyticsService) GetDashboard(sessionID, investor string) (*analytics.Dashboard, error) {
	records, err := s.datasets.GetRecords(sessionID)
	if err != nil {
		return nil, err
	}
	dashboard := analytics.BuildDashboard(records, investor)
	return &dashboard, nil
}

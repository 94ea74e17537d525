package services

import (
	"io"
	"time"

	"assetboard/internal/analytics"
	"assetboard/internal/models"
	"assetboard/internal/pagination"
)

// SessionServicer defines the contract for anonymous session handling.
type SessionServicer interface {
	CreateSession() (*models.Session, error)
	GetSession(sessionID string) (*models.Session, error)
	PurgeExpired(now time.Time) (int64, error)
}

// DatasetServicer defines the contract for loading and reading the
// holdings table of a session.
type DatasetServicer interface {
	LoadDataset(sessionID, name string, format models.DatasetFormat, r io.Reader) (*models.Dataset, error)
	LoadSample(sessionID string) (*models.Dataset, error)
	GetDataset(sessionID string) (*models.Dataset, error)
	GetRecords(sessionID string) ([]models.AssetRecord, error)
	ListInvestors(sessionID string) ([]string, error)
	GetInvestorRecords(sessionID, investor string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetRecord], error)
}

// AnalyticsServicer defines the contract for the per-investor views of a
// session's dataset.
type AnalyticsServicer interface {
	GetSummary(sessionID, investor string) (*analytics.Summary, error)
	GetRankings(sessionID, investor string, metric analytics.Metric) ([]analytics.RankedEntry, error)
	GetBreakdown(sessionID, investor string, key analytics.GroupKey, metric analytics.Metric) (*analytics.GroupNode, error)
	GetDashboard(sessionID, investor string) (*analytics.Dashboard, error)
}

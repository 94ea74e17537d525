package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"assetboard/internal/analytics"
	apperrors "assetboard/internal/errors"
	"assetboard/internal/middleware"
	"assetboard/internal/models"
	"assetboard/internal/pagination"
	"assetboard/internal/services"
	"assetboard/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- mock session service ---

type mockSessionService struct {
	createSessionFn func() (*models.Session, error)
	getSessionFn    func(sessionID string) (*models.Session, error)
}

func (m *mockSessionService) CreateSession() (*models.Session, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn()
	}
	return &models.Session{Base: models.Base{ID: "s-1"}, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (m *mockSessionService) GetSession(sessionID string) (*models.Session, error) {
	if m.getSessionFn != nil {
		return m.getSessionFn(sessionID)
	}
	return &models.Session{Base: models.Base{ID: sessionID}}, nil
}

func (m *mockSessionService) PurgeExpired(now time.Time) (int64, error) {
	return 0, nil
}

// --- mock dataset service ---

type mockDatasetService struct {
	loadDatasetFn        func(sessionID, name string, format models.DatasetFormat, r io.Reader) (*models.Dataset, error)
	loadSampleFn         func(sessionID string) (*models.Dataset, error)
	getDatasetFn         func(sessionID string) (*models.Dataset, error)
	getRecordsFn         func(sessionID string) ([]models.AssetRecord, error)
	listInvestorsFn      func(sessionID string) ([]string, error)
	getInvestorRecordsFn func(sessionID, investor string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetRecord], error)
}

func (m *mockDatasetService) LoadDataset(sessionID, name string, format models.DatasetFormat, r io.Reader) (*models.Dataset, error) {
	if m.loadDatasetFn != nil {
		return m.loadDatasetFn(sessionID, name, format, r)
	}
	return &models.Dataset{SessionID: sessionID, Name: name, Format: format}, nil
}

func (m *mockDatasetService) LoadSample(sessionID string) (*models.Dataset, error) {
	if m.loadSampleFn != nil {
		return m.loadSampleFn(sessionID)
	}
	return &models.Dataset{SessionID: sessionID, Format: models.DatasetFormatSample}, nil
}

func (m *mockDatasetService) GetDataset(sessionID string) (*models.Dataset, error) {
	if m.getDatasetFn != nil {
		return m.getDatasetFn(sessionID)
	}
	return nil, apperrors.ErrDatasetNotLoaded
}

func (m *mockDatasetService) GetRecords(sessionID string) ([]models.AssetRecord, error) {
	if m.getRecordsFn != nil {
		return m.getRecordsFn(sessionID)
	}
	return []models.AssetRecord{}, nil
}

func (m *mockDatasetService) ListInvestors(sessionID string) ([]string, error) {
	if m.listInvestorsFn != nil {
		return m.listInvestorsFn(sessionID)
	}
	return []string{}, nil
}

func (m *mockDatasetService) GetInvestorRecords(sessionID, investor string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetRecord], error) {
	if m.getInvestorRecordsFn != nil {
		return m.getInvestorRecordsFn(sessionID, investor, page)
	}
	resp := pagination.NewPageResponse([]models.AssetRecord{}, 1, pagination.DefaultPageSize, 0)
	return &resp, nil
}

// --- mock analytics service ---

type mockAnalyticsService struct {
	getSummaryFn   func(sessionID, investor string) (*analytics.Summary, error)
	getRankingsFn  func(sessionID, investor string, metric analytics.Metric) ([]analytics.RankedEntry, error)
	getBreakdownFn func(sessionID, investor string, key analytics.GroupKey, metric analytics.Metric) (*analytics.GroupNode, error)
	getDashboardFn func(sessionID, investor string) (*analytics.Dashboard, error)
}

func (m *mockAnalyticsService) GetSummary(sessionID, investor string) (*analytics.Summary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(sessionID, investor)
	}
	return &analytics.Summary{}, nil
}

func (m *mockAnalyticsService) GetRankings(sessionID, investor string, metric analytics.Metric) ([]analytics.RankedEntry, error) {
	if m.getRankingsFn != nil {
		return m.getRankingsFn(sessionID, investor, metric)
	}
	return []analytics.RankedEntry{}, nil
}

func (m *mockAnalyticsService) GetBreakdown(sessionID, investor string, key analytics.GroupKey, metric analytics.Metric) (*analytics.GroupNode, error) {
	if m.getBreakdownFn != nil {
		return m.getBreakdownFn(sessionID, investor, key, metric)
	}
	return &analytics.GroupNode{Name: investor, Tag: analytics.TagGroup, Children: []analytics.GroupNode{}}, nil
}

func (m *mockAnalyticsService) GetDashboard(sessionID, investor string) (*analytics.Dashboard, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(sessionID, investor)
	}
	d := analytics.BuildDashboard(nil, investor)
	return &d, nil
}

// verify interface compliance
var (
	_ services.SessionServicer   = (*mockSessionService)(nil)
	_ services.DatasetServicer   = (*mockDatasetService)(nil)
	_ services.AnalyticsServicer = (*mockAnalyticsService)(nil)
)

// --- helpers ---

func injectSessionID(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetSessionID(c, id)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doUpload(t *testing.T, r *gin.Engine, path, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

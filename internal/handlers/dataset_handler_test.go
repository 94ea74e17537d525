package handlers

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/models"
)

func setupDatasetRouter(handler *DatasetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectSessionID("s-1"))
	auth.POST("/dataset", handler.UploadDataset)
	auth.POST("/dataset/sample", handler.LoadSample)
	auth.GET("/dataset", handler.GetDataset)
	auth.GET("/investors", handler.ListInvestors)
	r.GET("/anonymous/dataset", handler.GetDataset)
	return r
}

func TestDatasetHandler_UploadDataset(t *testing.T) {
	t.Run("returns 201 and passes the file through", func(t *testing.T) {
		var gotName string
		var gotFormat models.DatasetFormat
		var gotBody string
		svc := &mockDatasetService{
			loadDatasetFn: func(sessionID, name string, format models.DatasetFormat, r io.Reader) (*models.Dataset, error) {
				gotName, gotFormat = name, format
				b, _ := io.ReadAll(r)
				gotBody = string(b)
				return &models.Dataset{SessionID: sessionID, Name: name, Format: format, RecordCount: 1}, nil
			},
		}
		r := setupDatasetRouter(NewDatasetHandler(svc, 1<<20))

		rec := doUpload(t, r, "/dataset", "file", "holdings.CSV", []byte("투자자,종목명\nA,Alpha\n"))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotName != "holdings.CSV" || gotFormat != models.DatasetFormatCSV {
			t.Errorf("unexpected name/format: %q %q", gotName, gotFormat)
		}
		if !strings.Contains(gotBody, "Alpha") {
			t.Errorf("expected file content to reach the service, got %q", gotBody)
		}
		dataset := parseJSON(t, rec)["dataset"].(map[string]interface{})
		if dataset["record_count"] != float64(1) {
			t.Errorf("expected record_count 1, got %v", dataset["record_count"])
		}
	})

	t.Run("returns 415 on unsupported extension", func(t *testing.T) {
		r := setupDatasetRouter(NewDatasetHandler(&mockDatasetService{}, 1<<20))

		rec := doUpload(t, r, "/dataset", "file", "holdings.xls", []byte("x"))

		if rec.Code != http.StatusUnsupportedMediaType {
			t.Fatalf("expected 415, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNSUPPORTED_FORMAT")
	})

	t.Run("returns 400 when the file field is missing", func(t *testing.T) {
		r := setupDatasetRouter(NewDatasetHandler(&mockDatasetService{}, 1<<20))

		rec := doUpload(t, r, "/dataset", "upload", "holdings.csv", []byte("x"))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 413 when the upload exceeds the limit", func(t *testing.T) {
		r := setupDatasetRouter(NewDatasetHandler(&mockDatasetService{}, 64))

		rec := doUpload(t, r, "/dataset", "file", "holdings.csv", []byte(strings.Repeat("A,Alpha\n", 100)))

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "FILE_TOO_LARGE")
	})

	t.Run("returns 422 when the table cannot be read", func(t *testing.T) {
		svc := &mockDatasetService{
			loadDatasetFn: func(string, string, models.DatasetFormat, io.Reader) (*models.Dataset, error) {
				return nil, apperrors.ErrInvalidDataset
			},
		}
		r := setupDatasetRouter(NewDatasetHandler(svc, 1<<20))

		rec := doUpload(t, r, "/dataset", "file", "holdings.xlsx", []byte("not a workbook"))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_DATASET")
	})
}

func TestDatasetHandler_LoadSample(t *testing.T) {
	var gotSession string
	svc := &mockDatasetService{
		loadSampleFn: func(sessionID string) (*models.Dataset, error) {
			gotSession = sessionID
			return &models.Dataset{SessionID: sessionID, Format: models.DatasetFormatSample, InvestorCount: 3}, nil
		},
	}
	r := setupDatasetRouter(NewDatasetHandler(svc, 1<<20))

	rec := doRequest(r, "POST", "/dataset/sample", "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotSession != "s-1" {
		t.Errorf("expected session s-1, got %q", gotSession)
	}
	dataset := parseJSON(t, rec)["dataset"].(map[string]interface{})
	if dataset["format"] != "sample" {
		t.Errorf("expected format sample, got %v", dataset["format"])
	}
}

func TestDatasetHandler_GetDataset(t *testing.T) {
	t.Run("returns 404 when nothing is loaded", func(t *testing.T) {
		r := setupDatasetRouter(NewDatasetHandler(&mockDatasetService{}, 1<<20))

		rec := doRequest(r, "GET", "/dataset", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DATASET_NOT_LOADED")
	})

	t.Run("returns 401 without a session", func(t *testing.T) {
		r := setupDatasetRouter(NewDatasetHandler(&mockDatasetService{}, 1<<20))

		rec := doRequest(r, "GET", "/anonymous/dataset", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})
}

func TestDatasetHandler_ListInvestors(t *testing.T) {
	svc := &mockDatasetService{
		listInvestorsFn: func(string) ([]string, error) {
			return []string{"철수", "영희"}, nil
		},
	}
	r := setupDatasetRouter(NewDatasetHandler(svc, 1<<20))

	rec := doRequest(r, "GET", "/investors", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	investors := parseJSON(t, rec)["investors"].([]interface{})
	if len(investors) != 2 || investors[0] != "철수" {
		t.Errorf("unexpected investors: %v", investors)
	}
}

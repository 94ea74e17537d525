package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/ingest"
	"assetboard/internal/models"
	"assetboard/internal/services"
)

// DatasetHandler handles dataset-related requests
type DatasetHandler struct {
	datasetService services.DatasetServicer
	maxUploadBytes int64
}

// NewDatasetHandler creates a new DatasetHandler accepting uploads of up to maxUploadBytes.
func NewDatasetHandler(datasetService services.DatasetServicer, maxUploadBytes int64) *DatasetHandler {
	return &DatasetHandler{datasetService: datasetService, maxUploadBytes: maxUploadBytes}
}

// DatasetResponse wraps dataset metadata.
type DatasetResponse struct {
	Dataset *models.Dataset `json:"dataset"`
}

// InvestorsResponse lists the investors of a dataset.
type InvestorsResponse struct {
	Investors []string `json:"investors"`
}

// UploadDataset handles a holdings file upload
// @Summary     Upload a dataset
// @Description Parse a CSV or XLSX holdings table and make it the session's dataset. A file that fails to parse leaves the current dataset in place.
// @Tags        datasets
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "Holdings table (.csv, .xlsx)"
// @Success     201 {object} DatasetResponse "Dataset loaded"
// @Failure     400 {object} ErrorResponse "Missing file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     413 {object} ErrorResponse "File too large"
// @Failure     415 {object} ErrorResponse "Unsupported format"
// @Failure     422 {object} ErrorResponse "Unreadable holdings table"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dataset [post]
func (h *DatasetHandler) UploadDataset(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(c, apperrors.ErrFileTooLarge)
			return
		}
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "A file field is required"))
		return
	}

	name := filepath.Base(header.Filename)
	format, err := ingest.DetectFormat(name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}
	defer file.Close()

	dataset, err := h.datasetService.LoadDataset(sessionID, name, format, file)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DatasetResponse{Dataset: dataset})
}

// LoadSample handles loading the demo dataset
// @Summary     Load the sample dataset
// @Description Replace the session's dataset with the built-in demo holdings of three investors.
// @Tags        datasets
// @Produce     json
// @Security    BearerAuth
// @Success     201 {object} DatasetResponse "Dataset loaded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dataset/sample [post]
func (h *DatasetHandler) LoadSample(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dataset, err := h.datasetService.LoadSample(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DatasetResponse{Dataset: dataset})
}

// GetDataset handles retrieving the dataset metadata
// @Summary     Get the dataset
// @Description Describe the dataset currently loaded into the session
// @Tags        datasets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DatasetResponse "Dataset"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dataset [get]
func (h *DatasetHandler) GetDataset(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dataset, err := h.datasetService.GetDataset(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DatasetResponse{Dataset: dataset})
}

// ListInvestors handles listing the investors of the dataset
// @Summary     List investors
// @Description List the distinct investors of the dataset in order of first appearance
// @Tags        datasets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} InvestorsResponse "Investors"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No dataset loaded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investors [get]
func (h *DatasetHandler) ListInvestors(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investors, err := h.datasetService.ListInvestors(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, InvestorsResponse{Investors: investors})
}

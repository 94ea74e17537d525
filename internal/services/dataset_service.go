package services

import (
	"errors"
	"io"

	"gorm.io/gorm"

	"assetboard/internal/analytics"
	apperrors "assetboard/internal/errors"
	"assetboard/internal/ingest"
	"assetboard/internal/logger"
	"assetboard/internal/models"
	"assetboard/internal/pagination"
)

const recordBatchSize = 200

// datasetService handles the holdings table of each session.
type datasetService struct {
	db       *gorm.DB
	sessions SessionServicer
}

// NewDatasetService creates a new DatasetServicer.
func NewDatasetService(db *gorm.DB, sessions SessionServicer) DatasetServicer {
	return &datasetService{db: db, sessions: sessions}
}

// LoadDataset parses r and makes it the session's dataset. The file is
// parsed completely before anything is written, so a file that fails to
// parse leaves the previous dataset in place.
func (s *datasetService) LoadDataset(sessionID, name string, format models.DatasetFormat, r io.Reader) (*models.Dataset, error) {
	if _, err := s.sessions.GetSession(sessionID); err != nil {
		return nil, err
	}

	records, err := ingest.Parse(r, format)
	if err != nil {
		return nil, err
	}
	return s.replace(sessionID, name, format, records)
}

// LoadSample makes the built-in demo table the session's dataset.
func (s *datasetService) LoadSample(sessionID string) (*models.Dataset, error) {
	if _, err := s.sessions.GetSession(sessionID); err != nil {
		return nil, err
	}
	return s.replace(sessionID, ingest.SampleName, models.DatasetFormatSample, ingest.Sample())
}

// replace swaps the session's dataset for records in one transaction.
func (s *datasetService) replace(sessionID, name string, format models.DatasetFormat, records []models.AssetRecord) (*models.Dataset, error) {
	dataset := &models.Dataset{
		SessionID:     sessionID,
		Name:          name,
		Format:        format,
		RecordCount:   len(records),
		InvestorCount: len(analytics.Investors(records)),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var previous []string
		if err := tx.Model(&models.Dataset{}).Where("session_id = ?", sessionID).Pluck("id", &previous).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(previous) > 0 {
			if err := tx.Where("dataset_id IN ?", previous).Delete(&models.AssetRecord{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.Where("id IN ?", previous).Delete(&models.Dataset{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := tx.Create(dataset).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(records) == 0 {
			return nil
		}
		for i := range records {
			records[i].ID = 0
			records[i].DatasetID = dataset.ID
		}
		if err := tx.CreateInBatches(records, recordBatchSize).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Named("datasets").Infow("dataset loaded",
		"session_id", sessionID,
		"dataset_id", dataset.ID,
		"format", format,
		"records", dataset.RecordCount,
		"investors", dataset.InvestorCount,
	)
	return dataset, nil
}

// GetDataset returns the metadata of the session's dataset.
func (s *datasetService) GetDataset(sessionID string) (*models.Dataset, error) {
	if _, err := s.sessions.GetSession(sessionID); err != nil {
		return nil, err
	}

	var dataset models.Dataset
	if err := s.db.Where("session_id = ?", sessionID).First(&dataset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDatasetNotLoaded
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &dataset, nil
}

// GetRecords returns every record of the session's dataset in source order.
func (s *datasetService) GetRecords(sessionID string) ([]models.AssetRecord, error) {
	dataset, err := s.GetDataset(sessionID)
	if err != nil {
		return nil, err
	}

	records := make([]models.AssetRecord, 0, dataset.RecordCount)
	if err := s.db.Where("dataset_id = ?", dataset.ID).Order("row_num").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// ListInvestors returns the distinct investors of the dataset in order of
// first appearance.
func (s *datasetService) ListInvestors(sessionID string) ([]string, error) {
	records, err := s.GetRecords(sessionID)
	if err != nil {
		return nil, err
	}
	return analytics.Investors(records), nil
}

// GetInvestorRecords retrieves a page of one investor's records in source order.
func (s *datasetService) GetInvestorRecords(sessionID, investor string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetRecord], error) {
	page.Defaults()

	dataset, err := s.GetDataset(sessionID)
	if err != nil {
		return nil, err
	}

	var totalItems int64
	base := s.db.Model(&models.AssetRecord{}).Where("dataset_id = ? AND investor = ?", dataset.ID, investor)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.AssetRecord
	if err := base.Order("row_num").Scopes(pagination.Paginate(page)).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}

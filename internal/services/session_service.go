package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/logger"
	"assetboard/internal/models"
	"assetboard/internal/uuid"
)

// sessionService handles session lifecycle.
type sessionService struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewSessionService creates a new SessionServicer whose sessions live for ttl.
func NewSessionService(db *gorm.DB, ttl time.Duration) SessionServicer {
	return &sessionService{db: db, ttl: ttl, now: time.Now}
}

// CreateSession purges expired sessions and starts a new, empty one.
func (s *sessionService) CreateSession() (*models.Session, error) {
	now := s.now()
	if _, err := s.PurgeExpired(now); err != nil {
		return nil, err
	}

	session := &models.Session{ExpiresAt: now.Add(s.ttl)}
	if err := s.db.Create(session).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return session, nil
}

// GetSession returns a live session. Unknown and expired sessions are both
// reported as ErrSessionNotFound.
func (s *sessionService) GetSession(sessionID string) (*models.Session, error) {
	if !uuid.IsValid(sessionID) {
		return nil, apperrors.ErrSessionNotFound
	}

	var session models.Session
	if err := s.db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if session.Expired(s.now()) {
		return nil, apperrors.ErrSessionNotFound
	}
	return &session, nil
}

// PurgeExpired deletes every session expired at now together with its
// dataset and records, and returns the number of sessions removed.
func (s *sessionService) PurgeExpired(now time.Time) (int64, error) {
	var purged int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&models.Session{}).Where("expires_at <= ?", now).Pluck("id", &ids).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(ids) == 0 {
			return nil
		}

		var datasetIDs []string
		if err := tx.Model(&models.Dataset{}).Where("session_id IN ?", ids).Pluck("id", &datasetIDs).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(datasetIDs) > 0 {
			if err := tx.Where("dataset_id IN ?", datasetIDs).Delete(&models.AssetRecord{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.Where("id IN ?", datasetIDs).Delete(&models.Dataset{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		result := tx.Where("id IN ?", ids).Delete(&models.Session{})
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		purged = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		logger.Named("sessions").Infow("purged expired sessions", "count", purged)
	}
	return purged, nil
}

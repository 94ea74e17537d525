package models

import "time"

// Session is an anonymous workspace holding at most one dataset.
type Session struct {
	Base
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`

	Dataset *Dataset `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"dataset,omitempty"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// AttemptLog records a single answer submission. Rows are append-only:
// nothing in the service updates or deletes them.
type AttemptLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE" json:"session_id"`
	Stage     int       `gorm:"not null" json:"stage"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Correct   bool      `gorm:"not null" json:"correct"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Session *Session `gorm:"foreignKey:SessionID;references:ID" json:"session,omitempty"`
}

func (AttemptLog) TableName() string {
	return "attempt_logs"
}

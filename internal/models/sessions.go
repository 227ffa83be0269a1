package models

import (
	"time"

	"github.com/google/uuid"
)

// Challenge status values for the out-of-band physical task.
const (
	ChallengeNone     = "none"
	ChallengePending  = "pending"
	ChallengeApproved = "approved"
)

// Session is one visitor's run through the quest, keyed by the browser
// fingerprint the frontend sends on first contact.
type Session struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Fingerprint     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"fingerprint"`
	CurrentStage    int       `gorm:"not null;default:0" json:"current_stage"`
	StartedAt       time.Time `gorm:"autoCreateTime" json:"started_at"`
	ExpiresAt       time.Time `gorm:"not null" json:"expires_at"`
	Completed       bool      `gorm:"not null;default:false" json:"completed"`
	ChallengeStatus string    `gorm:"type:varchar(20);not null;default:none" json:"challenge_status"`
	TrollingPhase   string    `gorm:"type:varchar(20);not null;default:error" json:"trolling_phase"`
	IPAddress       *string   `gorm:"type:varchar(45)" json:"ip_address"`

	Attempts []AttemptLog `gorm:"foreignKey:SessionID;references:ID" json:"attempts,omitempty"`
}

func (Session) TableName() string {
	return "sessions"
}

// Expired is derived, never stored. A completed session can no longer expire.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt) && !s.Completed
}

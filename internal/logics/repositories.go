package logics

import (
	"context"

	"github.com/google/uuid"

	"saturn-server/internal/models"
)

// SessionRepository is the persistence boundary for sessions. The gorm
// implementation lives in internal/repositories; tests substitute mocks.
type SessionRepository interface {
	// GetByID returns ErrSessionNotFound for an unknown id.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	// GetByFingerprint returns ErrSessionNotFound when no session exists
	// for the fingerprint yet.
	GetByFingerprint(ctx context.Context, fingerprint string) (*models.Session, error)
	Create(ctx context.Context, session *models.Session) error
	Update(ctx context.Context, session *models.Session) error
	// ListAll returns every session ordered by start time descending.
	ListAll(ctx context.Context) ([]models.Session, error)
}

// AttemptRepository appends and reads the append-only attempt log.
type AttemptRepository interface {
	Append(ctx context.Context, attempt *models.AttemptLog) error
	// ListBySession returns a session's attempts ordered by creation time.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.AttemptLog, error)
}

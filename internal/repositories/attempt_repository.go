package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"saturn-server/internal/models"
)

// AttemptRepository is the gorm-backed implementation of
// logics.AttemptRepository. The table is append-only.
type AttemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

func (r *AttemptRepository) Append(ctx context.Context, attempt *models.AttemptLog) error {
	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to append attempt log: %w", err)
	}
	return nil
}

func (r *AttemptRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.AttemptLog, error) {
	var attempts []models.AttemptLog
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("failed to list attempts for session %s: %w", sessionID, err)
	}
	return attempts, nil
}

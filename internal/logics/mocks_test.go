package logics_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"saturn-server/internal/models"
)

// MockSessionRepository is a mock implementation of logics.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*models.Session, error) {
	args := m.Called(ctx, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) ListAll(ctx context.Context) ([]models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

// MockAttemptRepository is a mock implementation of logics.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Append(ctx context.Context, attempt *models.AttemptLog) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.AttemptLog, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttemptLog), args.Error(1)
}

// stubSigner resolves every key to a predictable fake URL.
type stubSigner struct {
	fail bool
}

func (s *stubSigner) PresignedURL(ctx context.Context, key string) (string, error) {
	if s.fail {
		return "", context.DeadlineExceeded
	}
	return "https://signed.example/" + key, nil
}

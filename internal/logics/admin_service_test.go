package logics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saturn-server/internal/logics"
	"saturn-server/internal/models"
)

func TestListSessionsKeepsStoreOrder(t *testing.T) {
	ctx := context.Background()
	sessions := new(MockSessionRepository)
	attempts := new(MockAttemptRepository)
	service := logics.NewAdminService(sessions, attempts)

	now := time.Now().UTC()
	ip := "10.0.0.1"
	stored := []models.Session{
		{ID: uuid.New(), Fingerprint: "fp-3", StartedAt: now, IPAddress: &ip},
		{ID: uuid.New(), Fingerprint: "fp-2", StartedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), Fingerprint: "fp-1", StartedAt: now.Add(-2 * time.Hour)},
	}
	sessions.On("ListAll", ctx).Return(stored, nil)

	infos, err := service.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)

	// Repository returns most recent first; the rollup must not reorder.
	assert.Equal(t, "fp-3", infos[0].Fingerprint)
	assert.Equal(t, "fp-2", infos[1].Fingerprint)
	assert.Equal(t, "fp-1", infos[2].Fingerprint)
	assert.True(t, infos[0].StartedAt.After(infos[1].StartedAt))
	require.NotNil(t, infos[0].IPAddress)
	assert.Equal(t, ip, *infos[0].IPAddress)
}

func TestSessionDetailCountsVerdicts(t *testing.T) {
	ctx := context.Background()
	sessions := new(MockSessionRepository)
	attempts := new(MockAttemptRepository)
	service := logics.NewAdminService(sessions, attempts)

	session := &models.Session{
		ID:              uuid.New(),
		Fingerprint:     "fp-1",
		CurrentStage:    4,
		ChallengeStatus: models.ChallengePending,
	}
	history := []models.AttemptLog{
		{SessionID: session.ID, Stage: 1, Answer: "nope", Correct: false},
		{SessionID: session.ID, Stage: 1, Answer: "saturn", Correct: true},
		{SessionID: session.ID, Stage: 2, Answer: "1,0", Correct: true},
		{SessionID: session.ID, Stage: 3, Answer: "a,b", Correct: false},
		{SessionID: session.ID, Stage: 3, Answer: "0,1", Correct: true},
	}
	sessions.On("GetByID", ctx, session.ID).Return(session, nil)
	attempts.On("ListBySession", ctx, session.ID).Return(history, nil)

	detail, err := service.SessionDetail(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, session.ID, detail.SessionID)
	assert.Equal(t, 4, detail.CurrentStage)
	require.Len(t, detail.Attempts, 5)
	assert.Equal(t, 3, detail.TotalCorrect)
	assert.Equal(t, 2, detail.TotalWrong)
	assert.Equal(t, "nope", detail.Attempts[0].Answer)
}

func TestSessionDetailUnknownSession(t *testing.T) {
	ctx := context.Background()
	sessions := new(MockSessionRepository)
	attempts := new(MockAttemptRepository)
	service := logics.NewAdminService(sessions, attempts)

	unknown := uuid.New()
	sessions.On("GetByID", ctx, unknown).Return(nil, logics.ErrSessionNotFound)

	_, err := service.SessionDetail(ctx, unknown)
	assert.ErrorIs(t, err, logics.ErrSessionNotFound)
}

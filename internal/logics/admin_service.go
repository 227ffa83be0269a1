package logics

import (
	"context"

	"github.com/google/uuid"
)

// AdminService builds the read-only operator views: the full session list
// and per-session attempt histories with correct/incorrect rollups. The
// expected scale is a small private event, so full-table scans are fine.
type AdminService struct {
	sessions SessionRepository
	attempts AttemptRepository
}

func NewAdminService(sessions SessionRepository, attempts AttemptRepository) *AdminService {
	return &AdminService{sessions: sessions, attempts: attempts}
}

// ListSessions returns every session, most recently started first.
func (as *AdminService) ListSessions(ctx context.Context) ([]AdminSessionInfo, error) {
	sessions, err := as.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]AdminSessionInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, AdminSessionInfo{
			SessionID:       s.ID,
			Fingerprint:     s.Fingerprint,
			IPAddress:       s.IPAddress,
			CurrentStage:    s.CurrentStage,
			ChallengeStatus: s.ChallengeStatus,
			StartedAt:       s.StartedAt,
			Completed:       s.Completed,
		})
	}
	return infos, nil
}

// SessionDetail returns one session with its ordered attempt history.
func (as *AdminService) SessionDetail(ctx context.Context, id uuid.UUID) (*AdminSessionDetail, error) {
	session, err := as.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	attempts, err := as.attempts.ListBySession(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &AdminSessionDetail{
		SessionID:       session.ID,
		Fingerprint:     session.Fingerprint,
		IPAddress:       session.IPAddress,
		CurrentStage:    session.CurrentStage,
		ChallengeStatus: session.ChallengeStatus,
		StartedAt:       session.StartedAt,
		ExpiresAt:       session.ExpiresAt,
		Completed:       session.Completed,
		Attempts:        make([]AdminAttempt, 0, len(attempts)),
	}
	for _, a := range attempts {
		detail.Attempts = append(detail.Attempts, AdminAttempt{
			Stage:     a.Stage,
			Answer:    a.Answer,
			Correct:   a.Correct,
			CreatedAt: a.CreatedAt,
		})
		if a.Correct {
			detail.TotalCorrect++
		} else {
			detail.TotalWrong++
		}
	}
	return detail, nil
}

package logics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"saturn-server/internal/models"
)

// SessionService owns the session lifecycle and its progress state machine:
// get-or-create by fingerprint, explicit stage advances, the trolling
// sub-phase and the physical challenge status.
type SessionService struct {
	sessions    SessionRepository
	totalStages int
	duration    time.Duration
	logger      *zap.Logger
}

func NewSessionService(sessions SessionRepository, totalStages int, duration time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions:    sessions,
		totalStages: totalStages,
		duration:    duration,
		logger:      logger,
	}
}

// Start creates a session for a new fingerprint or restores the existing
// one. Safe to call repeatedly: the same fingerprint always maps to the same
// session. The client address is backfilled only if it was never set.
func (s *SessionService) Start(ctx context.Context, fingerprint, ipAddress string) (*SessionStatus, error) {
	session, err := s.sessions.GetByFingerprint(ctx, fingerprint)
	if err == ErrSessionNotFound {
		now := time.Now().UTC()
		session = &models.Session{
			ID:              uuid.New(),
			Fingerprint:     fingerprint,
			CurrentStage:    0,
			StartedAt:       now,
			ExpiresAt:       now.Add(s.duration),
			ChallengeStatus: models.ChallengeNone,
			TrollingPhase:   "error",
		}
		if ipAddress != "" {
			session.IPAddress = &ipAddress
		}
		if err := s.sessions.Create(ctx, session); err != nil {
			return nil, err
		}
		s.logger.Info("session created",
			zap.String("session_id", session.ID.String()),
			zap.String("fingerprint", fingerprint),
		)
	} else if err != nil {
		return nil, err
	} else if ipAddress != "" && session.IPAddress == nil {
		session.IPAddress = &ipAddress
		if err := s.sessions.Update(ctx, session); err != nil {
			return nil, err
		}
	}

	return statusOf(session), nil
}

// Status returns the session record with the derived expired flag.
func (s *SessionService) Status(ctx context.Context, id uuid.UUID) (*SessionStatus, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return statusOf(session), nil
}

// Advance unconditionally moves the session to the target stage. It is used
// for screens that are not part of the catalog, such as the trolling
// sequence past the last puzzle. Completion is set only here, once the
// target moves past totalStages+1.
func (s *SessionService) Advance(ctx context.Context, id uuid.UUID, stage int) error {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	session.CurrentStage = stage
	if stage > s.totalStages+1 {
		session.Completed = true
	}
	return s.sessions.Update(ctx, session)
}

// SetTrollingPhase persists the free-form trolling sub-phase so the frontend
// can resume it after a refresh. The value is not validated.
func (s *SessionService) SetTrollingPhase(ctx context.Context, id uuid.UUID, phase string) error {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	session.TrollingPhase = phase
	return s.sessions.Update(ctx, session)
}

// ChallengeSubmit marks the physical challenge as claimed by the player.
func (s *SessionService) ChallengeSubmit(ctx context.Context, id uuid.UUID) (string, error) {
	return s.setChallengeStatus(ctx, id, models.ChallengePending)
}

// ChallengeApprove marks the physical challenge as verified by the operator.
func (s *SessionService) ChallengeApprove(ctx context.Context, id uuid.UUID) (string, error) {
	return s.setChallengeStatus(ctx, id, models.ChallengeApproved)
}

// ChallengeStatus returns the current challenge state for polling.
func (s *SessionService) ChallengeStatus(ctx context.Context, id uuid.UUID) (string, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return session.ChallengeStatus, nil
}

func (s *SessionService) setChallengeStatus(ctx context.Context, id uuid.UUID, status string) (string, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	session.ChallengeStatus = status
	if err := s.sessions.Update(ctx, session); err != nil {
		return "", err
	}
	return status, nil
}

func statusOf(session *models.Session) *SessionStatus {
	return &SessionStatus{
		SessionID:       session.ID,
		CurrentStage:    session.CurrentStage,
		StartedAt:       session.StartedAt,
		ExpiresAt:       session.ExpiresAt,
		Completed:       session.Completed,
		Expired:         session.Expired(time.Now().UTC()),
		ChallengeStatus: session.ChallengeStatus,
		TrollingPhase:   session.TrollingPhase,
	}
}

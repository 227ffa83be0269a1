package controllers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"saturn-server/internal/logics"
)

// SessionController handles session lifecycle requests: start/restore by
// fingerprint, status polling and trolling-phase persistence.
type SessionController struct {
	sessionService *logics.SessionService
}

func NewSessionController(sessionService *logics.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

type sessionStartRequest struct {
	Fingerprint string `json:"fingerprint"`
}

// StartSession handles POST /session/start.
func (sc *SessionController) StartSession(c echo.Context) error {
	var req sessionStartRequest
	if err := c.Bind(&req); err != nil || req.Fingerprint == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "fingerprint is required"})
	}

	status, err := sc.sessionService.Start(c.Request().Context(), req.Fingerprint, c.RealIP())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, status)
}

// SessionStatus handles GET /session/status?session_id=...
func (sc *SessionController) SessionStatus(c echo.Context) error {
	sessionID, err := sessionIDFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	status, err := sc.sessionService.Status(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, logics.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, status)
}

// SetTrollingPhase handles POST /trolling/phase?session_id=...&phase=...
func (sc *SessionController) SetTrollingPhase(c echo.Context) error {
	sessionID, err := sessionIDFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	phase := c.QueryParam("phase")

	if err := sc.sessionService.SetTrollingPhase(c.Request().Context(), sessionID, phase); err != nil {
		if errors.Is(err, logics.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// sessionIDFromQuery parses the session_id query parameter shared by most
// endpoints.
func sessionIDFromQuery(c echo.Context) (uuid.UUID, error) {
	raw := c.QueryParam("session_id")
	if raw == "" {
		return uuid.Nil, errors.New("session_id is required")
	}
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid session_id format")
	}
	return sessionID, nil
}

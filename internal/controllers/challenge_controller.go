package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"saturn-server/internal/logics"
)

// ChallengeController handles the out-of-band physical challenge: the player
// claims completion, then polls until an operator approves it.
type ChallengeController struct {
	sessionService *logics.SessionService
}

func NewChallengeController(sessionService *logics.SessionService) *ChallengeController {
	return &ChallengeController{sessionService: sessionService}
}

// Submit handles POST /challenge/submit?session_id=...
func (cc *ChallengeController) Submit(c echo.Context) error {
	sessionID, err := sessionIDFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	status, err := cc.sessionService.ChallengeSubmit(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, logics.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}

// Status handles GET /challenge/status?session_id=...
func (cc *ChallengeController) Status(c echo.Context) error {
	sessionID, err := sessionIDFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	status, err := cc.sessionService.ChallengeStatus(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, logics.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}

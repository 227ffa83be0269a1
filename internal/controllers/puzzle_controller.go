package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"saturn-server/internal/logics"
)

// PuzzleController handles stage presentation, answer checking and explicit
// stage advances.
type PuzzleController struct {
	puzzleService  *logics.PuzzleService
	sessionService *logics.SessionService
}

func NewPuzzleController(puzzleService *logics.PuzzleService, sessionService *logics.SessionService) *PuzzleController {
	return &PuzzleController{
		puzzleService:  puzzleService,
		sessionService: sessionService,
	}
}

// GetPuzzle handles GET /puzzle/:stage?session_id=...
func (pc *PuzzleController) GetPuzzle(c echo.Context) error {
	stage, err := stageFromParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if _, err := sessionIDFromQuery(c); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	data, err := pc.puzzleService.PuzzleData(c.Request().Context(), stage)
	if err != nil {
		if errors.Is(err, logics.ErrStageNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "puzzle not found"})
		}
		// Presign failures degrade to not-found for the resource, never 500.
		return c.JSON(http.StatusNotFound, map[string]string{"error": "media not available"})
	}
	return c.JSON(http.StatusOK, data)
}

type puzzleCheckRequest struct {
	SessionID uuid.UUID `json:"session_id"`
	Stage     int       `json:"stage"`
	Answer    string    `json:"answer"`
}

// CheckAnswer handles POST /puzzle/check.
func (pc *PuzzleController) CheckAnswer(c echo.Context) error {
	var req puzzleCheckRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := pc.puzzleService.CheckAnswer(c.Request().Context(), req.SessionID, req.Stage, req.Answer)
	if err != nil {
		if errors.Is(err, logics.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		if errors.Is(err, logics.ErrStageNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "puzzle not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}

// AdvanceStage handles POST /puzzle/advance?session_id=...&stage=...
func (pc *PuzzleController) AdvanceStage(c echo.Context) error {
	sessionID, err := sessionIDFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	stage, err := strconv.Atoi(c.QueryParam("stage"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid stage"})
	}

	if err := pc.sessionService.Advance(c.Request().Context(), sessionID, stage); err != nil {
		if errors.Is(err, logics.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// GetCaptcha handles GET /puzzle/:stage/captcha.
func (pc *PuzzleController) GetCaptcha(c echo.Context) error {
	stage, err := stageFromParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	payload, err := pc.puzzleService.CaptchaData(c.Request().Context(), stage)
	if err != nil {
		if errors.Is(err, logics.ErrStageNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "captcha not found"})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": "media not available"})
	}
	return c.JSON(http.StatusOK, payload)
}

func stageFromParam(c echo.Context) (int, error) {
	stage, err := strconv.Atoi(c.Param("stage"))
	if err != nil {
		return 0, errors.New("invalid stage number")
	}
	return stage, nil
}

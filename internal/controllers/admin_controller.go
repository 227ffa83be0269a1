package controllers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"saturn-server/internal/logics"
)

// AdminController serves the operator dashboard: session rollups and
// challenge approval. Routes are gated by the admin password middleware.
type AdminController struct {
	adminService   *logics.AdminService
	sessionService *logics.SessionService
}

func NewAdminController(adminService *logics.AdminService, sessionService *logics.SessionService) *AdminController {
	return &AdminController{
		adminService:   adminService,
		sessionService: sessionService,
	}
}

// Login handles POST /admin/login. The middleware already verified the
// passphrase; reaching this handler means the login is good.
func (ac *AdminController) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ListSessions handles GET /admin/sessions.
func (ac *AdminController) ListSessions(c echo.Context) error {
	sessions, err := ac.adminService.ListSessions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sessions)
}

// SessionDetail handles GET /admin/session/:id.
func (ac *AdminController) SessionDetail(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid session id format"})
	}

	detail, err := ac.adminService.SessionDetail(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, logics.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, detail)
}

// ApproveChallenge handles POST /admin/approve/:id.
func (ac *AdminController) ApproveChallenge(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid session id format"})
	}

	status, err := ac.sessionService.ChallengeApprove(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, logics.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}

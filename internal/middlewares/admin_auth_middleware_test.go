package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saturn-server/internal/middlewares"
)

func TestAdminAuthMiddleware(t *testing.T) {
	e := echo.New()
	handler := middlewares.AdminAuthMiddleware("saturn-admin")(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	tests := []struct {
		name       string
		password   string
		wantStatus int
	}{
		{"correct password", "saturn-admin", http.StatusOK},
		{"wrong password", "not-it", http.StatusForbidden},
		{"missing header", "", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/sessions", nil)
			if tt.password != "" {
				req.Header.Set(middlewares.AdminPasswordHeader, tt.password)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminPasswordHeader carries the shared operator passphrase.
const AdminPasswordHeader = "X-Admin-Password"

// AdminAuthMiddleware gates admin routes behind a single shared passphrase.
// This is not a capability system: one secret, compared for equality.
func AdminAuthMiddleware(password string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			supplied := c.Request().Header.Get(AdminPasswordHeader)
			if supplied == "" || supplied != password {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "wrong password"})
			}
			return next(c)
		}
	}
}

package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeflow/storefront/internal/models"
)

// RequireRoles allows the request when the caller's role is in the
// given set. An empty set allows everyone; a caller without a role
// claim counts as authenticated. Must run after RequireLogin.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}
			role := RoleFromContext(c)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

func UserIDFromContext(c echo.Context) (uint, bool) {
	v, ok := c.Get(ctxUserID).(uint)
	return v, ok
}

func RoleFromContext(c echo.Context) string {
	if v, ok := c.Get(ctxRole).(string); ok && v != "" {
		return v
	}
	return models.RoleAuthenticated
}

func EmailFromContext(c echo.Context) string {
	v, _ := c.Get(ctxEmail).(string)
	return v
}

package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bootify/catalog-api/internal/core/domain"
)

// RequireRole enforces that the security context holds the required role.
// Must run after Auth; an absent role set means the gate was bypassed and the
// request is rejected. The error travels through the central error handler,
// which renders it as a 403.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(ContextKeyRoles).([]string)
			for _, r := range roles {
				if r == required {
					return next(c)
				}
			}
			return domain.ErrForbidden
		}
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bootify/catalog-api/internal/api/metrics"
	"github.com/bootify/catalog-api/internal/core/ports"
)

// Context keys populated by Auth for downstream handlers.
const (
	ContextKeyUsername = "username"
	ContextKeyRoles    = "roles"
)

// Auth verifies the bearer token and injects the security context. Requests
// without a valid token are rejected with 401 before the handler runs.
// Public routes simply aren't wrapped with this middleware.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(ContextKeyUsername, claims.Username)
			c.Set(ContextKeyRoles, claims.Roles)

			return next(c)
		}
	}
}

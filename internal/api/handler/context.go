package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bootify/catalog-api/internal/api/middleware"
	"github.com/bootify/catalog-api/internal/core/service"
)

// ctxIdentity extracts the security context injected by the Auth middleware
// and fast-fails before any service call: an empty username means the
// middleware never ran, so the route is misconfigured rather than the token
// merely lacking a claim.
func ctxIdentity(c echo.Context) (username string, roles []string, err error) {
	username, _ = c.Get(middleware.ContextKeyUsername).(string)
	if username == "" {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	roles, _ = c.Get(middleware.ContextKeyRoles).([]string)
	return username, roles, nil
}

// requestContext returns the request context annotated with the caller's
// username so writes can be attributed in the change journal.
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if username, _ := c.Get(middleware.ContextKeyUsername).(string); username != "" {
		ctx = context.WithValue(ctx, service.UsernameContextKey, username)
	}
	return ctx
}

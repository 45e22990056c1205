package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bootify/catalog-api/internal/core/domain"
)

func resolveFor(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return resolveError(err, zerolog.Nop(), c)
}

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password"},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized, "invalid token"},
		{"token signature", domain.ErrTokenSignatureInvalid, http.StatusUnauthorized, "invalid token"},
		{"token malformed", domain.ErrTokenMalformed, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{"user not found masked", domain.ErrUserNotFound, http.StatusUnauthorized, "invalid username or password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := resolveFor(t, tc.err)
			if code != tc.code || msg != tc.msg {
				t.Fatalf("got (%d, %q), want (%d, %q)", code, msg, tc.code, tc.msg)
			}
		})
	}
}

func TestResolveError_AuthFailuresShareOneMessage(t *testing.T) {
	// Username enumeration guard: wrong password and unknown user map to the
	// exact same status and message.
	codeA, msgA := resolveFor(t, domain.ErrInvalidCredentials)
	codeB, msgB := resolveFor(t, domain.ErrUserNotFound)
	if codeA != codeB || msgA != msgB {
		t.Fatalf("responses differ: (%d, %q) vs (%d, %q)", codeA, msgA, codeB, msgB)
	}
}

func TestResolveError_ValidationError(t *testing.T) {
	code, msg := resolveFor(t, &domain.ValidationError{Violations: []string{"name is required", "price must be greater than or equal to 0"}})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "name is required; price must be greater than or equal to 0" {
		t.Fatalf("validation message must enumerate violations, got %q", msg)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	code, msg := resolveFor(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized || msg != "missing authorization header" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestResolveError_UnexpectedIsGeneric(t *testing.T) {
	code, msg := resolveFor(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail must not leak, got %q", msg)
	}
}

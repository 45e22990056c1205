package ports

import "github.com/bootify/catalog-api/internal/core/domain"

// TokenService issues and verifies the signed, time-bound tokens used for
// request authentication. Verification is pure computation — no I/O.
type TokenService interface {
	Issue(username string, roles []string) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}

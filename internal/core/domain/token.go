package domain

import "errors"

var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)

// TokenClaims is the identity a verified token asserts. Roles reflect the
// user's roles at issuance time; there is no live revocation.
type TokenClaims struct {
	Username string
	Roles    []string
}

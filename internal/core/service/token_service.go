package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bootify/catalog-api/internal/core/domain"
)

// clockSkewLeeway tolerates small clock drift between issuer and verifier.
const clockSkewLeeway = 30 * time.Second

// TokenService issues and verifies HS256-signed JWTs carrying the subject
// username and role set. Tokens are stateless: validity is signature + expiry
// only, with no revocation list.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), tokenTTL: tokenTTL, now: time.Now}
}

func (s *TokenService) Issue(username string, roles []string) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"username": username,
		"roles":    roles,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithLeeway(clockSkewLeeway),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenMalformed
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.TokenClaims{
		Username: username,
		Roles:    claimRoles(claims),
	}, nil
}

// claimRoles extracts the roles claim, which decodes as []interface{}.
func claimRoles(claims jwt.MapClaims) []string {
	raw, _ := claims["roles"].([]interface{})
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignatureInvalid
	default:
		return domain.ErrTokenMalformed
	}
}

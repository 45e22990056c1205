package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bootify/catalog-api/internal/core/domain"
	"github.com/bootify/catalog-api/internal/core/ports"
)

// AuthService implements the login use case: credential verification against
// the user store and token issuance.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
}

// unknownUserHash is a throwaway bcrypt hash (cost 10) compared against when
// the username does not exist, so the not-found path pays the same hashing
// cost as a wrong password and login latency does not reveal which usernames
// exist.
var unknownUserHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func NewAuthService(users ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the credentials and returns a fresh token with the user's
// current roles. A missing user and a wrong password produce the same error
// so the response never reveals which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, &domain.ValidationError{Violations: []string{"username and password are required"}}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(unknownUserHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// bcrypt's comparison is constant-time against the stored hash.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Roles)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		Token:    token,
		Username: user.Username,
		Roles:    user.Roles,
	}, nil
}

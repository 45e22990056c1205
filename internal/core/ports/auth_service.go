package ports

import "context"

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token    string
	Username string
	Roles    []string
}

// AuthService implements the session endpoint use cases.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

package ports

import (
	"context"

	"github.com/bootify/catalog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RoleRepository maintains the static role set.
type RoleRepository interface {
	// Ensure creates the named role if it does not exist yet.
	Ensure(ctx context.Context, name string) error
}

// Package bootstrap holds the opt-in development seeding step. It is never
// part of the request path and must stay disabled in production: the seeded
// accounts use fixed, well-known credentials.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bootify/catalog-api/internal/core/domain"
	"github.com/bootify/catalog-api/internal/core/ports"
)

// Seeder idempotently creates the static roles, two default accounts and a
// handful of demo products. Running it repeatedly changes nothing.
type Seeder struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewSeeder(users ports.UserRepository, roles ports.RoleRepository, products ports.ProductRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{users: users, roles: roles, products: products, logger: logger}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedRoles(ctx); err != nil {
		return err
	}
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	return s.seedProducts(ctx)
}

func (s *Seeder) seedRoles(ctx context.Context) error {
	for _, name := range []string{domain.RoleAdmin, domain.RoleUser} {
		if err := s.roles.Ensure(ctx, name); err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	defaults := []struct {
		username string
		password string
		roles    []string
	}{
		{"admin", "admin", []string{domain.RoleAdmin}},
		{"user", "user", []string{domain.RoleUser}},
	}

	for _, d := range defaults {
		if _, err := s.users.FindByUsername(ctx, d.username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("lookup %s: %w", d.username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", d.username, err)
		}

		now := time.Now().UTC()
		_, err = s.users.Create(ctx, &domain.User{
			Username:     d.username,
			PasswordHash: string(hash),
			Roles:        d.roles,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("create %s: %w", d.username, err)
		}
		s.logger.Info().Str("username", d.username).Msg("seeded default account")
	}
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	count, err := s.products.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	demo := []*domain.Product{
		{Name: "MacBook Pro", Description: "13-inch, M2 chip, 8GB RAM, 256GB SSD", Price: 1299.99, StockQuantity: 10, Active: true, CreatedAt: now, UpdatedAt: now},
		{Name: "iPhone 15", Description: "128GB, Midnight Black", Price: 999.99, StockQuantity: 15, Active: true, CreatedAt: now, UpdatedAt: now},
		{Name: "iPad Air", Description: "10.9-inch, Wi-Fi, 64GB", Price: 599.99, StockQuantity: 20, Active: true, CreatedAt: now, UpdatedAt: now},
	}

	for _, p := range demo {
		if _, err := s.products.Insert(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}
	s.logger.Info().Int("count", len(demo)).Msg("seeded demo products")
	return nil
}

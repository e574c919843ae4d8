package repository

import (
	"context"

	"github.com/Developer123-Aksh/fleetflow-x-odoo/internal/domain"
)

// UserRepository defines the persistence operations for dashboard users.
type UserRepository interface {
	// Create adds a new user.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

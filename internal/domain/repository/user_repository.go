package repository

import (
	"context"
	"errors"

	"nexstock/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by the identity-provider subject.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create persists a new user document. LastLogin is stamped with the
	// server time.
	Create(ctx context.Context, user *entity.User) error

	// TouchLastLogin rewrites only the LastLogin field with the server time,
	// preserving every other field.
	TouchLastLogin(ctx context.Context, id string) error

	// UpdateRole rewrites only the role field.
	UpdateRole(ctx context.Context, id string, role entity.Role) error
}

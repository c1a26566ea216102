// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the persistence operations the authentication core
// depends on. The concrete storage engine is an external collaborator; it is
// assumed to enforce email uniqueness at the storage layer as a backstop for
// the advisory ExistsByEmail check.
type UserRepository interface {
	// ExistsByEmail reports whether a user with the given email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save persists a new user entity and assigns its identifier.
	Save(ctx context.Context, user *entity.User) error
}

// Package usecase defines the application-layer contracts exposed to the delivery layer.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// RegisterInput is the transient registration request. The raw password is
// discarded as soon as hashing completes; it is never persisted or logged.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// RegisterOutput carries the saved user back to the caller.
type RegisterOutput struct {
	User *entity.User
}

// LoginInput is the transient credential pair. It exists only for the
// duration of the authentication call.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the authenticated user and their freshly issued token.
type LoginOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase is the authentication core exposed to the transport layer.
// Each call is an independent unit of work; no state is shared across calls
// beyond the backing store.
type UserUsecase interface {
	// Register creates a new account with a unique email.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a signed identity token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

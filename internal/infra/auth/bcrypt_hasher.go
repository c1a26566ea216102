// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// bcrypt embeds its own salt in the output, so no separate salt storage is needed,
// and its comparison runs in constant time.
type bcryptHasher struct {
	cost              int
	maxPasswordLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	maxLength := 72 // bcrypt ignores input beyond 72 bytes
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MaxPasswordLength > 0 {
			maxLength = cfg.Auth.MaxPasswordLength
		}
	}

	return &bcryptHasher{
		cost:              cost,
		maxPasswordLength: maxLength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// Empty and oversized passwords are rejected before any hashing work happens.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domainerrors.ErrInvalidRequest.WrapMessage("password must not be empty")
	}
	if len(password) > h.maxPasswordLength {
		return "", domainerrors.ErrInvalidRequest.WrapMessage("password exceeds maximum length")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Verify compares a plaintext password with a bcrypt hash.
// A mismatch returns (false, nil); a stored hash bcrypt cannot parse returns
// the corrupt-hash error so the caller can alert on data corruption.
func (h *bcryptHasher) Verify(password, storedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, domainerrors.ErrCorruptHash.WrapMessage("stored hash is not a valid bcrypt hash")
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a registered account.
// The ID is assigned by the store on first save and is immutable afterwards.
// PasswordHash is always the output of the password hasher, never raw input.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The login identifier. Unique across all users, case-sensitive as stored.
	Name         string    // The user's display name.
	PasswordHash string    // One-way hash of the user's password, salt embedded.
	Role         Role      // The user's authorization level.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"accounts/internal/domain/entity"
)

// Claims is the set of named facts embedded in an identity token: the
// registered claims (issuer, subject, issued-at, expiry) plus the custom
// email and role claims carried for downstream authorization.
type Claims struct {
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the user identifier.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and verifying identity
// tokens. Tokens are self-contained and stateless: verification requires no
// store lookup, trading revocability for horizontal scalability.
type TokenService interface {
	// Issue builds and signs a time-bounded identity token for the user.
	Issue(userID uuid.UUID, email string, role entity.Role) (string, error)

	// Verify checks the signature and expiry of a token string and returns
	// its claims on success.
	Verify(tokenString string) (*Claims, error)
}

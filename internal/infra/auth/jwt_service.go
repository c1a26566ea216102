// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"accounts/config"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard with HS256. The keyed-MAC scheme is paired with a symmetric
// key; signing and verification share the same secret.
type jwtService struct {
	signingKey []byte        // Symmetric key, loaded once at startup, never logged.
	ttl        time.Duration // Time-to-live for issued tokens.
	issuer     string        // Fixed issuer name embedded in the iss claim.
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance and
// refuses to start with a key below the security threshold.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Token == nil || cfg.Token.SigningKey == "" {
		return nil, errors.New("token signing key must be provided")
	}
	if len(cfg.Token.SigningKey) < 32 {
		return nil, errors.New("token signing key must be at least 32 bytes")
	}

	svc := &jwtService{
		signingKey: []byte(cfg.Token.SigningKey),
		ttl:        cfg.Token.TTL,
		issuer:     cfg.Token.Issuer,
		now:        time.Now,
	}
	if svc.ttl <= 0 {
		svc.ttl = 24 * time.Hour
	}

	return svc, nil
}

// Issue creates a signed identity token carrying the user's claims.
func (s *jwtService) Issue(userID uuid.UUID, email string, role entity.Role) (string, error) {
	now := s.now()
	claims := service.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign identity token")
	}

	return signed, nil
}

// Verify checks the token's structure, signature and expiry against the same
// symmetric key, and returns the embedded claims on success.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domainerrors.ErrTokenExpired.WrapMessage("token expiry has passed")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrSignatureInvalid):
		return nil, domainerrors.ErrTokenSignatureInvalid.WrapMessage("token signature mismatch")
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("token is not a valid compact serialization")
	default:
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("token failed verification")
	}
}

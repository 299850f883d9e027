package service

import (
	"time"

	"profilemap/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAdmin is returned for a valid token that lacks the admin capability.
var ErrNotAdmin = errors.New("token does not carry the admin capability")

// AdminClaims are the claims carried by an admin capability token.
// The token is minted by an external auth collaborator; this service only checks it.
type AdminClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// TokenService issues and validates admin capability tokens.
type TokenService interface {
	// GenerateAdminToken mints a token for subject carrying the admin capability.
	GenerateAdminToken(subject string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*AdminClaims, error)

	// TokenTTL returns the lifetime of minted tokens.
	TokenTTL() time.Duration
}

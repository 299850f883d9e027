// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"profilemap/config"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin.TokenSecret == "" {
		return nil, errors.New("admin token secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Admin.TokenSecret),
		ttl:    cfg.Admin.TokenTTL,
		issuer: cfg.Admin.Issuer,
		now:    time.Now,
	}, nil
}

// GenerateAdminToken mints a signed token for subject with admin set.
func (s *jwtService) GenerateAdminToken(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}

	now := s.now()
	claims := service.AdminClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign admin token")
	}

	return signed, nil
}

// ValidateToken checks signature, expiry, issuer and the admin claim.
func (s *jwtService) ValidateToken(tokenString string) (*service.AdminClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.AdminClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(err, "invalid admin token")
	}

	if !claims.Admin {
		return claims, service.ErrNotAdmin
	}

	return claims, nil
}

// TokenTTL returns the configured lifetime of minted tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}

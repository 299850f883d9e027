package auth

import (
	"testing"
	"time"

	"profilemap/config"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_admin_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.TokenSecret = testSecret
	cfg.Admin.TokenTTL = time.Hour
	cfg.Admin.Issuer = "profilemap"

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := svc.GenerateAdminToken("ops@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, "profilemap", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, time.Hour, svc.TokenTTL())

	_, err = svc.GenerateAdminToken("")
	require.Error(t, err)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return s
	}
	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   "someone",
			Issuer:    "profilemap",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := valid()
	wrongIssuer.Issuer = "someone-else"

	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: sign(service.AdminClaims{Admin: true, RegisteredClaims: valid()}, jwt.SigningMethodHS256, []byte("other-secret"))},
		{name: "wrong algorithm", token: sign(service.AdminClaims{Admin: true, RegisteredClaims: valid()}, jwt.SigningMethodHS512, []byte(testSecret))},
		{name: "expired", token: sign(service.AdminClaims{Admin: true, RegisteredClaims: expired}, jwt.SigningMethodHS256, []byte(testSecret))},
		{name: "wrong issuer", token: sign(service.AdminClaims{Admin: true, RegisteredClaims: wrongIssuer}, jwt.SigningMethodHS256, []byte(testSecret))},
		{name: "no expiry", token: sign(service.AdminClaims{Admin: true, RegisteredClaims: noExpiry}, jwt.SigningMethodHS256, []byte(testSecret))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			require.Error(t, err)
			assert.NotErrorIs(t, err, service.ErrNotAdmin)
		})
	}

	t.Run("valid but not admin", func(t *testing.T) {
		token := sign(service.AdminClaims{Admin: false, RegisteredClaims: valid()}, jwt.SigningMethodHS256, []byte(testSecret))

		claims, err := svc.ValidateToken(token)
		require.ErrorIs(t, err, service.ErrNotAdmin)
		assert.Equal(t, "someone", claims.Subject)
		assert.True(t, errors.Is(err, service.ErrNotAdmin))
	})
}

package auth

import (
	"testing"
	"time"

	"carttrace/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"admin"}

	accessToken, refreshToken, err := svc.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	// Refresh tokens carry no roles; they are reloaded at refresh time.
	assert.Empty(t, refreshClaims.Roles)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	// An access token is not accepted as a refresh token, and vice versa.
	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	first := svc.HashToken("some-refresh-token")
	second := svc.HashToken("some-refresh-token")
	other := svc.HashToken("another-refresh-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64)
}

func TestJWTService_ConfiguredTTLOverridesDefault(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: 48 * time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenDuration())
}

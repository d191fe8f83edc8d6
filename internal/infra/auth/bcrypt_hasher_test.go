package auth

import (
	"testing"

	"carttrace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	secret := "483920"
	hash, err := hasher.Hash(secret)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)

	assert.NoError(t, hasher.Verify(secret, hash))
	assert.Error(t, hasher.Verify("483921", hash))
	assert.Error(t, hasher.Verify("", hash))
	assert.Error(t, hasher.Verify(secret, "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(6))

	hash, err := hasher.Hash("0712345678")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	// An out-of-range cost falls back to the bcrypt default.
	hasher := NewBcryptHasher(newTestHasherConfig(99))

	hash, err := hasher.Hash("483920")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

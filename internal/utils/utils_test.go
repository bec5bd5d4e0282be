package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("Secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "Secret123", hash)
	assert.NotContains(t, hash, "Secret123")
	assert.True(t, CheckPasswordHash("Secret123", hash))
	assert.False(t, CheckPasswordHash("secret123", hash))
}

func TestHashPasswordSaltsEachHash(t *testing.T) {
	a, err := HashPassword("Secret123", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("Secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateSessionToken(secret, "64a1f0c2e1b2c3d4e5f60718", "admin@clinic.test", "superAdmin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "64a1f0c2e1b2c3d4e5f60718", claims.ID)
	assert.Equal(t, "admin@clinic.test", claims.Email)
	assert.Equal(t, "superAdmin", claims.Role)
	assert.Nil(t, claims.ExpiresAt)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken([]byte("test-secret"), "id", "a@b.c", "admin")
	require.NoError(t, err)

	_, err = ValidateToken([]byte("another-secret"), token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken([]byte("test-secret"), "not.a.token")
	assert.Error(t, err)
}

func TestMissingSecret(t *testing.T) {
	_, err := GenerateSessionToken(nil, "id", "a@b.c", "admin")
	assert.Error(t, err)

	_, err = ValidateToken(nil, "whatever")
	assert.Error(t, err)
}

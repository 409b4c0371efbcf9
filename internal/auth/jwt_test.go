package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJWTSecretMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	assert.Error(t, InitJWTSecret())
}

func TestGenerateAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := VerifyJWT(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "user@example.com", claims["email"])
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT(7, "user@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	require.NoError(t, InitJWTSecret())

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	require.NoError(t, InitJWTSecret())

	_, err := VerifyJWT("not.a.token")
	assert.Error(t, err)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("Str0ng!Pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!Pass", hashed)

	assert.NoError(t, ComparePassword(hashed, "Str0ng!Pass"))
	assert.Error(t, ComparePassword(hashed, "wrong password"))
}

func TestAuthJWTRoundTrip(t *testing.T) {
	token, err := GenerateAuthJWT(42, "jane@example.com", "admin", "test-secret", 1)
	require.NoError(t, err)

	claims, err := ParseAuthJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseAuthJWTWrongSecret(t *testing.T) {
	token, err := GenerateAuthJWT(42, "jane@example.com", "user", "test-secret", 1)
	require.NoError(t, err)

	_, err = ParseAuthJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateOTPLengthAndDigits(t *testing.T) {
	otp, err := GenerateOTP(6)
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}

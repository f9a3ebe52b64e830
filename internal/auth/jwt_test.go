package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	Init("unit-test-secret", 60)

	token, err := GenerateToken("user-1", "employer")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "employer", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	Init("unit-test-secret", 60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	Init("secret-a", 60)
	token, err := GenerateToken("user-1", "job_seeker")
	require.NoError(t, err)

	Init("secret-b", 60)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	Init("unit-test-secret", 60)
	tokenTTL = -time.Minute
	defer Init("unit-test-secret", 60)

	token, err := GenerateToken("user-1", "job_seeker")
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("sup3rsecret")
	require.NoError(t, err)
	assert.NotEqual(t, "sup3rsecret", hash)

	assert.True(t, CheckPasswordHash("sup3rsecret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("short"))
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokenString, err := GenerateToken("user-123", "alice@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestExtractIDFromToken(t *testing.T) {
	tokenString, err := GenerateToken("user-123", "alice@example.com", time.Hour)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}

func TestValidateToken_Expired(t *testing.T) {
	tokenString, err := GenerateToken("user-123", "alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestHashToken_Deterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	c := HashToken("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "client@azura.example", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestExtractIDFromToken_RejectsExpired(t *testing.T) {
	token, err := GenerateToken("user-1", "client@azura.example", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestExtractIDFromToken_RejectsForeignSignature(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("someone-elses-secret"))
	require.NoError(t, err)

	_, err = ExtractIDFromToken(foreign)
	assert.Error(t, err)
}

func TestExtractIDFromToken_RequiresSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestHashToken_IsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}

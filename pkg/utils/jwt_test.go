package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("42", RoleAdmin, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)

	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("42", "customer", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other")

	assert.Error(t, err)
}

func TestParseJWTRejectsExpired(t *testing.T) {
	token, err := GenerateJWT("42", "customer", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")

	assert.Error(t, err)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	_, err := GenerateJWT("42", RoleAdmin, "", time.Hour)

	assert.EqualError(t, err, "missing jwt secret")
}

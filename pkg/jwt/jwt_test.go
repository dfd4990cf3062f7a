package jwt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = strings.Repeat("x", 32)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, "origem-api", 1)

	token, err := tm.GenerateToken("ops@origem.dev", RoleAdmin)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@origem.dev", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "origem-api", claims.Issuer)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, "origem-api", -1)

	token, err := tm.GenerateToken("ops@origem.dev", RoleAdmin)
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecretOrIssuer(t *testing.T) {
	issuer := NewTokenManager(testSecret, "origem-api", 1)
	token, err := issuer.GenerateToken("ops@origem.dev", RoleAdmin)
	require.NoError(t, err)

	_, err = NewTokenManager(strings.Repeat("y", 32), "origem-api", 1).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenManager(testSecret, "someone-else", 1).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTimingSafeCompare(t *testing.T) {
	assert.True(t, TimingSafeCompare("abc", "abc"))
	assert.False(t, TimingSafeCompare("abc", "abd"))
}

package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_AccessRoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	token, err := m.GenerateAccessToken(42, "driver@example.com", false)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "driver@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.False(t, claims.IsAdmin())
}

func TestTokenManager_AdminRoleClaim(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	token, err := m.GenerateAccessToken(1, "admin@example.com", true)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Contains(t, claims.Roles, "admin")
}

func TestTokenManager_RefreshTokenType(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	token, err := m.GenerateRefreshToken(7, "user@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.False(t, claims.IsAdmin())
}

func TestTokenManager_RejectsGarbageAndWrongSecret(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour, 7*24*time.Hour)

	_, err := m.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour, time.Hour)
	token, err := other.GenerateAccessToken(1, "x@example.com", false)
	require.NoError(t, err)
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	m := NewTokenManager(testSecret, -time.Minute, time.Hour)

	token, err := m.GenerateAccessToken(1, "x@example.com", false)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

package auth

import (
	"testing"
	"time"

	"wholesale-portal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(expiresIn time.Duration) *TokenService {
	return NewTokenService(config.JWT{
		Secret:    "test-secret",
		ExpiresIn: expiresIn,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := newTestTokenService(time.Hour)

	identity := Identity{UserID: 42, Email: "user@wholesale.com", Role: RoleUser}
	signed, err := tokens.Generate(identity)
	require.NoError(t, err)

	parsed, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestTokenExpired(t *testing.T) {
	tokens := newTestTokenService(-time.Minute)

	signed, err := tokens.Generate(Identity{UserID: 1, Role: RoleUser})
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenWrongSecret(t *testing.T) {
	signed, err := newTestTokenService(time.Hour).Generate(Identity{UserID: 1, Role: RoleUser})
	require.NoError(t, err)

	other := NewTokenService(config.JWT{Secret: "other-secret", ExpiresIn: time.Hour})
	_, err = other.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := newTestTokenService(time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: RoleUser}.IsAdmin())
	assert.False(t, Identity{}.IsAdmin())
}

package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejapp/backend/auth"
)

func TestIssuePairRoundtrip(t *testing.T) {
	tok := auth.NewTokenizer([]byte("test-key"), time.Hour, 24*time.Hour)

	pair, err := tok.IssuePair("john@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	sub, err := tok.Subject(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", sub)

	sub, err = tok.Subject(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", sub)
}

func TestExpiredTokenIsDistinguishable(t *testing.T) {
	tok := auth.NewTokenizer([]byte("test-key"), -time.Minute, time.Hour)

	pair, err := tok.IssuePair("john@example.com")
	require.NoError(t, err)

	_, err = tok.Subject(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestMalformedTokenIsInvalid(t *testing.T) {
	tok := auth.NewTokenizer([]byte("test-key"), time.Hour, time.Hour)

	_, err := tok.Subject("not-a-token")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestWrongKeyIsInvalidNotExpired(t *testing.T) {
	issuer := auth.NewTokenizer([]byte("key-a"), time.Hour, time.Hour)
	verifier := auth.NewTokenizer([]byte("key-b"), time.Hour, time.Hour)

	pair, err := issuer.IssuePair("john@example.com")
	require.NoError(t, err)

	_, err = verifier.Subject(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, auth.VerifyPassword("password123", hash))
	assert.False(t, auth.VerifyPassword("password124", hash))
	assert.False(t, auth.VerifyPassword("password123", "not-a-hash"))
}

package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = []byte("access-secret")
	refreshSecret = []byte("refresh-secret")
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := SignAccessToken("42", "a@b.co", "admin", accessSecret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ParseAccessToken(tok, accessSecret)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, "a@b.co", claims.Email)
	require.Equal(t, "admin", claims.Role)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	tok, err := SignAccessToken("42", "a@b.co", "admin", accessSecret, time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(tok, refreshSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenExpired(t *testing.T) {
	tok, err := SignAccessToken("42", "a@b.co", "admin", accessSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(tok, accessSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tok, err := SignRefreshToken("42", "authenticated", refreshSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseRefreshToken(tok, refreshSecret)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, "refresh", claims.Typ)
}

// An access token must never verify as a refresh token: the secrets
// differ, and even with the right secret the typ claim is missing.
func TestSecretsAreNotInterchangeable(t *testing.T) {
	access, err := SignAccessToken("42", "a@b.co", "admin", accessSecret, time.Minute)
	require.NoError(t, err)
	_, err = ParseRefreshToken(access, refreshSecret)
	require.ErrorIs(t, err, ErrInvalidToken)

	accessSignedWithRefresh, err := SignAccessToken("42", "a@b.co", "admin", refreshSecret, time.Minute)
	require.NoError(t, err)
	_, err = ParseRefreshToken(accessSignedWithRefresh, refreshSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensAreUnique(t *testing.T) {
	a, err := SignRefreshToken("42", "authenticated", refreshSecret, time.Hour)
	require.NoError(t, err)
	b, err := SignRefreshToken("42", "authenticated", refreshSecret, time.Hour)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

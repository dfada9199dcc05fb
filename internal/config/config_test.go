package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://svc:pw@localhost:5432/shop")
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, 900*time.Second, cfg.AccessTokenTTL)
	require.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	require.False(t, cfg.IsProduction())
	// anon falls back to the service DSN
	require.Equal(t, cfg.DatabaseURL, cfg.DatabaseAnonURL)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadMissingRefreshSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	require.ErrorContains(t, err, "JWT_REFRESH_SECRET")
}

func TestLoadEqualSecretsRejected(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_REFRESH_SECRET", "access-secret")

	_, err := Load()
	require.ErrorContains(t, err, "must differ")
}

func TestCSV(t *testing.T) {
	require.Nil(t, CSV(""))
	require.Equal(t, []string{"a", "b"}, CSV("a, b,"))
}

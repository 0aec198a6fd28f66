package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata"))
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.LogLevel)
	require.Equal(t, "json", cfg.Server.LogFormat)

	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "db.example.com", cfg.Database.Postgres.Host)
	require.Equal(t, 5433, cfg.Database.Postgres.Port)

	require.True(t, cfg.Storage.Redis.Enabled)
	require.Equal(t, "cache.example.com:6380", cfg.Storage.Redis.Address)
	require.Equal(t, 2, cfg.Storage.Redis.DB)
	require.Equal(t, 3*time.Second, cfg.Storage.Redis.Timeout)

	require.Equal(t, "jwt-secret", cfg.Auth.JWT.Secret)
	require.Equal(t, "empowerher-test", cfg.Auth.JWT.Issuer)
	require.Equal(t, 2*time.Hour, cfg.Auth.JWT.TTL)

	require.False(t, cfg.Maintenance.Enabled)
	require.Equal(t, 30, cfg.Maintenance.StateRetentionDays)
	require.Equal(t, 10*time.Minute, cfg.Maintenance.SessionIdleTTL)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.False(t, cfg.Storage.Redis.Enabled)
	require.Equal(t, "empowerher", cfg.Auth.JWT.Issuer)
	require.Equal(t, 24*time.Hour, cfg.Auth.JWT.TTL)
	require.True(t, cfg.Maintenance.Enabled)
	require.Equal(t, 90, cfg.Maintenance.StateRetentionDays)
}

func TestDatabaseConfigForPostgres(t *testing.T) {
	cfg := DatabaseConfig{
		Driver: "postgres",
		Postgres: DBAuthConfig{
			Host:     "db.internal",
			Port:     5432,
			Database: "empowerher",
			Username: "svc",
			Password: "pw",
		},
	}

	out := DatabaseConfigFor(cfg)
	require.Equal(t, "postgres", out.Driver)
	require.Equal(t, "db.internal", out.Host)
	require.Equal(t, "empowerher", out.Name)
	require.Equal(t, "svc", out.User)
}

// File: internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so tests see defaults only.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_NAME", "APP_ENV", "DEBUG", "STRUCTURED_LOGGING",
		"HOST", "PORT",
		"SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES", "ALGORITHM",
		"DATABASE_URL", "MIGRATION",
		"DB_POOL_MIN_CONNS", "DB_POOL_MAX_CONNS", "DB_ACQUIRE_TIMEOUT_SECONDS",
		"CORS_ORIGIN", "CORS_METHOD", "CORS_HEADER",
		"LOG_LEVEL", "LOG_FILE", "SAVE_LOG",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/app")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "rest-boilerplate", cfg.AppName)
	require.Equal(t, "production", cfg.AppEnv)
	require.False(t, cfg.Debug)
	require.True(t, cfg.StructuredLogging)
	require.Equal(t, "0.0.0.0", cfg.Host)
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, "HS256", cfg.Algorithm)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	require.False(t, cfg.Migration)
	require.Equal(t, int32(3), cfg.DBMinConns)
	require.Equal(t, int32(10), cfg.DBMaxConns)
	require.Equal(t, 5*time.Second, cfg.AcquireTimeout)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, []string{"*"}, cfg.CORSMethods)
	require.Equal(t, []string{"*"}, cfg.CORSHeaders)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.SaveLog)
	require.Equal(t, 0, cfg.RedisDB)
}

func TestLoadMissingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/app")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "SECRET_KEY")

	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DATABASE_URL", "")
	_, err = Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadUnsupportedAlgorithm(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("ALGORITHM", "RS256")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "RS256")
}

func TestLoadInvalidValues(t *testing.T) {
	cases := map[string]string{
		"DEBUG":             "maybe",
		"PORT":              "eighty",
		"DB_POOL_MAX_CONNS": "ten",
		"REDIS_DB":          "one",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			t.Setenv(key, val)

			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadBadPoolBounds(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("DB_POOL_MIN_CONNS", "8")
	t.Setenv("DB_POOL_MAX_CONNS", "4")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("APP_NAME", "identity")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("CORS_ORIGIN", "https://a.example.com, https://b.example.com")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "identity", cfg.AppName)
	require.True(t, cfg.Debug)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "127.0.0.1:9090", cfg.Addr())
	require.Equal(t, "redis:6380", cfg.RedisAddr())
	require.Equal(t, 2, cfg.RedisDB)
}

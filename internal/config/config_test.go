package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unishort/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, "unishort/1.0", cfg.Transport.UserAgent)
	assert.Equal(t, int64(1<<20), cfg.Transport.MaxBodyBytes)
	assert.Empty(t, cfg.Shortener.Providers)
	assert.False(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.TLS.Enabled)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TRANSPORT_TIMEOUT", "3s")
	t.Setenv("TRANSPORT_USER_AGENT", "test-agent")
	t.Setenv("SHORTENER_PROVIDERS", "v.gd,is.gd")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, "test-agent", cfg.Transport.UserAgent)
	assert.Equal(t, []string{"v.gd", "is.gd"}, cfg.Shortener.Providers)
	assert.InDelta(t, 0.5, cfg.RateLimit.RPS, 1e-9)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}

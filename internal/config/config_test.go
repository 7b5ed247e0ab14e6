package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ADDR", "APP_BASE_URL", "APP_ENV", "SESSION_SECRET", "CONTENT_FILE",
		"CONTENT_WATCH", "CONTACT_SUBMIT_DELAY", "PAGE_IDLE_TTL", "PAGE_MAX_INSTANCES", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, "http://localhost:8080", cfg.GetAppBaseURL())
	assert.True(t, cfg.IsDevelopment())
	assert.NotEmpty(t, cfg.GetSessionSecret())
	assert.Empty(t, cfg.GetContentFile())
	assert.False(t, cfg.GetContentWatch())
	assert.Equal(t, 1500*time.Millisecond, cfg.GetSubmitDelay())
	assert.Equal(t, 30*time.Minute, cfg.GetPageIdleTTL())
	assert.Equal(t, 5000, cfg.GetPageMaxInstances())
	assert.Equal(t, 10, cfg.GetRateLimitPerMinute())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("CONTENT_FILE", "/srv/site.yaml")
	t.Setenv("CONTENT_WATCH", "true")
	t.Setenv("CONTACT_SUBMIT_DELAY", "250ms")
	t.Setenv("PAGE_IDLE_TTL", "5m")
	t.Setenv("PAGE_MAX_INSTANCES", "200")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, EnvProduction, cfg.AppEnv)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "/srv/site.yaml", cfg.ContentFile)
	assert.True(t, cfg.ContentWatch)
	assert.Equal(t, 250*time.Millisecond, cfg.SubmitDelay)
	assert.Equal(t, 5*time.Minute, cfg.PageIdleTTL)
	assert.Equal(t, 200, cfg.PageMaxInstances)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("secret required in production", func(t *testing.T) {
		clearEnv(t)
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingSessionSecret)
	})

	t.Run("malformed values are all reported", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SESSION_SECRET", "x")
		t.Setenv("CONTACT_SUBMIT_DELAY", "soon")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONTACT_SUBMIT_DELAY")
		assert.Contains(t, err.Error(), "RATE_LIMIT_PER_MINUTE")
	})

	t.Run("idle ttl below a second", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SESSION_SECRET", "x")
		t.Setenv("PAGE_IDLE_TTL", "3ns")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PAGE_IDLE_TTL: must be at least 1s")
	})
}

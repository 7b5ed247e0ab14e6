package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/b2bsite/internal/config"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/internal/server"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddr:         "127.0.0.1:0",
		AppBaseURL:         "http://localhost:8080",
		AppEnv:             config.EnvDevelopment,
		SessionSecret:      "test-secret",
		SubmitDelay:        10 * time.Millisecond,
		PageIdleTTL:        time.Minute,
		RateLimitPerMinute: 10,
	}
}

func TestApp_WiresServer(t *testing.T) {
	a := New(testConfig())

	srv, err := do.Invoke[*server.Server](a.Injector())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	manager := do.MustInvoke[*live.Manager](a.Injector())
	assert.Equal(t, 1, manager.Len())

	require.NoError(t, a.Shutdown())
	assert.Equal(t, 0, manager.Len(), "shutdown should unmount every page")
}

func TestApp_BadContentFile(t *testing.T) {
	cfg := testConfig()
	cfg.ContentFile = "does-not-exist.yaml"
	a := New(cfg)
	defer a.Shutdown()

	_, err := do.Invoke[*server.Server](a.Injector())
	assert.ErrorContains(t, err, "load site content")
}

func TestApp_RunStopsWithContext(t *testing.T) {
	a := New(testConfig())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.NoError(t, a.Shutdown())
}

package main

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/junction-api/internal/config"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "debug",
			LogFormat:              "json",
			ShutdownTimeoutSeconds: 1,
		},
		Database: config.DatabaseConfig{
			Driver:       config.DriverMemory,
			MaxOpenConns: 1,
		},
	}
}

func newTestApplication(t *testing.T) *application {
	t.Helper()
	_, log := logger.SetupTestLogger(t)

	app, err := newApplication(context.Background(), memoryConfig(), log)
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app
}

func TestNewApplicationRejectsUnknownDriver(t *testing.T) {
	_, log := logger.SetupTestLogger(t)
	cfg := memoryConfig()
	cfg.Database.Driver = "sqlite"

	_, err := newApplication(context.Background(), cfg, log)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestRouter(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	tests := []struct {
		path        string
		status      int
		contentType string
		body        string
	}{
		{"/health", http.StatusOK, "", "OK"},
		{"/", http.StatusOK, "text/html; charset=utf-8", "<h1>Code challenge</h1>"},
		{"/heroes", http.StatusOK, "application/json", "[]\n"},
		{"/vendors/1", http.StatusNotFound, "application/json", "{\"error\":\"Vendor not found\"}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestSeedThenServe(t *testing.T) {
	app := newTestApplication(t)

	sum, err := app.seed(context.Background(), rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, 10, sum.Heroes)

	rr := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/heroes/1", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"super_name":"Ms. Marvel"`)
	assert.Contains(t, rr.Body.String(), `"hero_powers":[{`)
}

func TestStartHTTPServerStopsOnCancel(t *testing.T) {
	app := newTestApplication(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(ctx, app.setupRouter())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	cfg := config.Default()
	cfg.Server.Mode = "test"
	dir := t.TempDir()
	cfg.Log.File = filepath.Join(dir, "app.log")
	cfg.Storage.LocalPath = dir

	a, err := NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestNewApp_Routes(t *testing.T) {
	a := testApp(t)

	for _, path := range []string{"/api/health", "/api/categories", "/api/poster-templates", "/metrics", "/swagger/doc.json"} {
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNewApp_IssuesSession(t *testing.T) {
	a := testApp(t)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(util.SessionHeader))
}

func TestConfigCallbacks(t *testing.T) {
	a := testApp(t)

	var got *config.Config
	a.RegisterConfigCallback(func(cfg *config.Config) { got = cfg })

	next := config.Default()
	next.Poster.MaxPollAttempts = 5
	a.applyConfig(next)
	assert.Same(t, next, got)
}

func TestNewApp_RedisUnavailable(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Mode = "test"
	cfg.Log.File = filepath.Join(t.TempDir(), "app.log")
	cfg.Session.Store = "redis"
	cfg.Redis.Host = "127.0.0.1"
	cfg.Redis.Port = 1

	_, err := NewApp(cfg)
	assert.Error(t, err)
}

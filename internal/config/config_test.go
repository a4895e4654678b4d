package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0.3, cfg.AI.ParseTemperature)
	assert.Equal(t, 0.7, cfg.AI.PlanTemperature)
	assert.Equal(t, 2*time.Second, cfg.Poster.PollInterval)
	assert.Equal(t, 60, cfg.Poster.MaxPollAttempts)
	assert.Equal(t, "nano-banana-pro", cfg.KIE.Model)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Empty(t, cfg.AI.APIKey)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "server:\n  port: \"9090\"\nposter:\n  max_poll_attempts: 12\nstorage:\n  local_path: " + filepath.Join(dir, "data") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("KIE_API_KEY", "kie-from-env")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 12, cfg.Poster.MaxPollAttempts)
	assert.Equal(t, "kie-from-env", cfg.KIE.APIKey)
	assert.Equal(t, "sk-from-env", cfg.AI.APIKey)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
	assert.DirExists(t, filepath.Join(dir, "data"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"poll interval", func(c *Config) { c.Poster.PollInterval = 0 }},
		{"poll attempts", func(c *Config) { c.Poster.MaxPollAttempts = -1 }},
		{"session store", func(c *Config) { c.Session.Store = "mysql" }},
		{"storage type", func(c *Config) { c.Storage.Type = "ftp" }},
		{"server mode", func(c *Config) { c.Server.Mode = "verbose" }},
		{"rate limit", func(c *Config) { c.RateLimit.MaxRequests = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPublicBaseURL(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL())

	cfg.Storage.PublicBaseURL = "https://files.example.com/"
	assert.Equal(t, "https://files.example.com", cfg.PublicBaseURL())
}

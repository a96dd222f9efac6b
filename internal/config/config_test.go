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
	assert.Equal(t, "https://open.api.nexon.com/static/tfd/meta", cfg.API.BaseURL)
	assert.Equal(t, "en", cfg.API.Language)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.APITimeout())
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.API.Language)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("api:\n  language: ko\n  timeout: 10s\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ko", cfg.API.Language)
	assert.Equal(t, 10*time.Second, cfg.APITimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset fields keep defaults.
	assert.Equal(t, "https://open.api.nexon.com/static/tfd/meta", cfg.API.BaseURL)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  language: ko\n"), 0o644))

	t.Setenv("TFD_LANGUAGE", "ja")
	t.Setenv("TFD_CACHE_DIR", "/tmp/tfd-cache")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ja", cfg.API.Language)

	dir, err := cfg.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tfd-cache", dir)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"BadLanguage", func(c *Config) { c.API.Language = "klingon" }},
		{"BadTimeout", func(c *Config) { c.API.Timeout = "soon" }},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.API.Language = "de"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de", loaded.API.Language)
}

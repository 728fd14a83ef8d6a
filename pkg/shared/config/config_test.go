package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.hackerone.com", cfg.HackerOne.BaseURL)
	assert.Equal(t, "v1", cfg.HackerOne.Version)
	assert.Equal(t, Duration(5*time.Second), cfg.HackerOne.RetryTime)
	assert.False(t, cfg.HackerOne.Cache.Enabled)
	assert.Equal(t, "/tmp/h1_cache.json", cfg.HackerOne.Cache.Path)
	assert.Equal(t, DefaultBugzillaURL, cfg.Bugzilla.URL)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
logger:
  level: debug
hackerone:
  username: my_key_name
  retry_time: 10s
  cache:
    enabled: true
    path: /var/cache/h1.json
bugzilla:
  url: https://bugzilla.example.org
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "my_key_name", cfg.HackerOne.Username)
	assert.Equal(t, Duration(10*time.Second), cfg.HackerOne.RetryTime)
	assert.True(t, cfg.HackerOne.Cache.Enabled)
	assert.Equal(t, "/var/cache/h1.json", cfg.HackerOne.Cache.Path)
	assert.Equal(t, "https://bugzilla.example.org", cfg.Bugzilla.URL)

	// Directives the file leaves unset keep their defaults.
	assert.Equal(t, "https://api.hackerone.com", cfg.HackerOne.BaseURL)
	assert.Equal(t, "v1", cfg.HackerOne.Version)
}

func TestValidateConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.NoError(t, ValidateConfig(cfg))

	cfg.HackerOne.BaseURL = "not a url"
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateHackerOneConfig(t *testing.T) {
	cfg := DefaultHackerOneConfig()
	assert.NoError(t, ValidateHackerOneConfig(&cfg))

	cfg.RetryTime = Duration(-time.Second)
	assert.Error(t, ValidateHackerOneConfig(&cfg))

	cfg = DefaultHackerOneConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Path = ""
	assert.Error(t, ValidateHackerOneConfig(&cfg))
}

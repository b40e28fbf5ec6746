package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

var configEnvKeys = []string{
	"CONFIG_FILE", "SERVER_PORT", "LOG_LEVEL", "GIN_MODE",
	"GITHUB_TOKEN", "GITHUB_MAX_ATTEMPTS", "GITHUB_RETRY_DELAY",
	"CRON_SECRET", "STATS_TIMEZONE",
}

func validConfig() Config {
	return Defaults()
}

func TestLoadFromEnv_DefaultValues(t *testing.T) {
	clearEnv(t, configEnvKeys...)

	cfg := LoadFromEnv()
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIURL)
	assert.Equal(t, 10, cfg.GitHub.MaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.GitHub.RetryDelay)
	assert.Equal(t, "UTC", cfg.Ingestion.TimeZone)
	assert.Empty(t, cfg.Ingestion.CronSecret)
}

func TestLoadFromEnv_CustomValues(t *testing.T) {
	clearEnv(t, configEnvKeys...)
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("GITHUB_MAX_ATTEMPTS", "3")
	t.Setenv("CRON_SECRET", "s3cret")

	cfg := LoadFromEnv()
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, 3, cfg.GitHub.MaxAttempts)
	assert.Equal(t, "s3cret", cfg.Ingestion.CronSecret)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t, configEnvKeys...)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: ":7070"
  write_timeout: 5m
logger:
  level: warn
github:
  max_attempts: 4
  retry_delay: 2s
ingestion:
  timezone: Europe/Moscow
gin_mode: test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GITHUB_MAX_ATTEMPTS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Server.WriteTimeout)
	// untouched keys keep defaults
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, 7, cfg.GitHub.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.GitHub.RetryDelay)
	assert.Equal(t, "Europe/Moscow", cfg.Ingestion.TimeZone)
	assert.Equal(t, "test", cfg.GinMode)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t, configEnvKeys...)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t, configEnvKeys...)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("invalid server config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.ReadTimeout = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server config validation failed")
	})

	t.Run("invalid logger config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logger.Level = "invalid"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "logger config validation failed")
	})

	t.Run("invalid github config", func(t *testing.T) {
		cfg := validConfig()
		cfg.GitHub.MaxAttempts = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "github config validation failed")
	})

	t.Run("invalid ingestion config", func(t *testing.T) {
		cfg := validConfig()
		cfg.Ingestion.TimeZone = "Mars/Olympus"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ingestion config validation failed")
	})

	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.GinMode = "invalid"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid GIN_MODE")
	})

	t.Run("valid gin modes", func(t *testing.T) {
		for _, mode := range []string{"debug", "release", "test"} {
			cfg := validConfig()
			cfg.GinMode = mode
			assert.NoError(t, cfg.Validate(), "mode %s should be valid", mode)
		}
	})
}

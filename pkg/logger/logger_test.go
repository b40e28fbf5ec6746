package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/festy23/palantir/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_OUTPUT", "stderr")

	logger, err := New()
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Desugar().Core().Enabled(-1)) // debug
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    appConfig.LoggerConfig
		debug  bool
		errors bool
	}{
		{
			name:   "production json info",
			cfg:    appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"},
			debug:  false,
			errors: true,
		},
		{
			name:   "development console debug",
			cfg:    appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stdout"},
			debug:  true,
			errors: true,
		},
		{
			name:   "invalid level falls back to info",
			cfg:    appConfig.LoggerConfig{Level: "verbose", Format: "json", Output: "stderr"},
			debug:  false,
			errors: true,
		},
		{
			name:   "empty output defaults to stdout",
			cfg:    appConfig.LoggerConfig{Level: "error", Format: "json"},
			debug:  false,
			errors: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithConfig(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)

			core := logger.Desugar().Core()
			assert.Equal(t, tt.debug, core.Enabled(-1))
			assert.Equal(t, tt.errors, core.Enabled(2))
		})
	}
}

func TestNewWithConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palantir.log")

	logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Infow("statistics collected", "collected", 3)
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "statistics collected")
	assert.Contains(t, string(data), `"collected":3`)
}

package config

import "fmt"

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is the logging level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Format is the logging format (json, console).
	Format string `yaml:"format"`
	// Output is the output destination (stdout, stderr, or file path).
	Output string `yaml:"output"`
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  "info",
		Format: "json",
		Output: "stdout",
	}
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return DefaultLoggerConfig().withEnv()
}

func (c LoggerConfig) withEnv() LoggerConfig {
	c.Level = GetEnv("LOG_LEVEL", c.Level)
	c.Format = GetEnv("LOG_FORMAT", c.Format)
	c.Output = GetEnv("LOG_OUTPUT", c.Output)
	return c
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Level] {
		return fmt.Errorf("invalid log level: %s (must be: debug, info, warn, error)", c.Level)
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid log format: %s (must be: json, console)", c.Format)
	}

	return nil
}

// IsProduction returns true if logger is configured for production.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}

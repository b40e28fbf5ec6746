// Package config provides application configuration loaded from an optional YAML
// file and environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig `yaml:"server"`
	// Logger holds logger configuration.
	Logger LoggerConfig `yaml:"logger"`
	// GitHub holds statistics provider configuration.
	GitHub GitHubConfig `yaml:"github"`
	// Ingestion holds scheduled statistics collection configuration.
	Ingestion IngestionConfig `yaml:"ingestion"`
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string `yaml:"gin_mode"`
}

// Defaults returns configuration with every field at its default value.
func Defaults() Config {
	return Config{
		Server:    DefaultServerConfig(),
		Logger:    DefaultLoggerConfig(),
		GitHub:    DefaultGitHubConfig(),
		Ingestion: DefaultIngestionConfig(),
		GinMode:   "release",
	}
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Defaults().withEnv()
}

// Load builds configuration from defaults, then the YAML file named by CONFIG_FILE
// (if set), then environment variables. Later sources win.
func Load() (Config, error) {
	cfg := Defaults()

	if path := GetEnv("CONFIG_FILE", ""); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	return cfg.withEnv(), nil
}

// LoadFile decodes the YAML file at path on top of cfg.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c Config) withEnv() Config {
	c.Server = c.Server.withEnv()
	c.Logger = c.Logger.withEnv()
	c.GitHub = c.GitHub.withEnv()
	c.Ingestion = c.Ingestion.withEnv()
	c.GinMode = GetEnv("GIN_MODE", c.GinMode)
	return c
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.GitHub.Validate(); err != nil {
		return fmt.Errorf("github config validation failed: %w", err)
	}

	if err := c.Ingestion.Validate(); err != nil {
		return fmt.Errorf("ingestion config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}

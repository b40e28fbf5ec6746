package config

import (
	"fmt"
	"time"
)

// IngestionConfig holds scheduled statistics collection configuration.
type IngestionConfig struct {
	// CronSecret is the shared bearer token of the scheduled trigger endpoint.
	// An empty secret disables the endpoint.
	CronSecret string `yaml:"cron_secret"`
	// TimeZone is the reference time zone for week-start normalization.
	TimeZone string `yaml:"timezone"`
}

// DefaultIngestionConfig returns the default ingestion configuration.
func DefaultIngestionConfig() IngestionConfig {
	return IngestionConfig{
		TimeZone: "UTC",
	}
}

// LoadIngestionConfigFromEnv loads ingestion configuration from environment variables.
func LoadIngestionConfigFromEnv() IngestionConfig {
	return DefaultIngestionConfig().withEnv()
}

func (c IngestionConfig) withEnv() IngestionConfig {
	c.CronSecret = GetEnv("CRON_SECRET", c.CronSecret)
	c.TimeZone = GetEnv("STATS_TIMEZONE", c.TimeZone)
	return c
}

// Location resolves TimeZone.
func (c IngestionConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Validate validates ingestion configuration.
func (c IngestionConfig) Validate() error {
	if c.TimeZone == "" {
		return fmt.Errorf("TimeZone must not be empty")
	}
	_, err := c.Location()
	return err
}

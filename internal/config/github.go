package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/festy23/palantir/pkg/retry"
)

// GitHubConfig holds configuration of the commit-activity statistics provider.
type GitHubConfig struct {
	// APIURL is the provider base URL.
	APIURL string `yaml:"api_url"`
	// Token is an optional bearer token sent with every request.
	Token string `yaml:"token"`
	// UserAgent is sent as the User-Agent header.
	UserAgent string `yaml:"user_agent"`
	// RequestTimeout bounds a single HTTP attempt.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// MaxAttempts is the attempt budget per repository.
	MaxAttempts int `yaml:"max_attempts"`
	// RetryDelay is the fixed delay between attempts.
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// DefaultGitHubConfig returns the default provider configuration.
func DefaultGitHubConfig() GitHubConfig {
	return GitHubConfig{
		APIURL:         "https://api.github.com",
		UserAgent:      "Palantir-Dashboard",
		RequestTimeout: 30 * time.Second,
		MaxAttempts:    10,
		RetryDelay:     5 * time.Second,
	}
}

// LoadGitHubConfigFromEnv loads provider configuration from environment variables.
func LoadGitHubConfigFromEnv() GitHubConfig {
	return DefaultGitHubConfig().withEnv()
}

func (c GitHubConfig) withEnv() GitHubConfig {
	c.APIURL = GetEnv("GITHUB_API_URL", c.APIURL)
	c.Token = GetEnv("GITHUB_TOKEN", c.Token)
	c.UserAgent = GetEnv("GITHUB_USER_AGENT", c.UserAgent)
	c.RequestTimeout = GetEnvDuration("GITHUB_REQUEST_TIMEOUT", c.RequestTimeout)
	c.MaxAttempts = GetEnvInt("GITHUB_MAX_ATTEMPTS", c.MaxAttempts)
	c.RetryDelay = GetEnvDuration("GITHUB_RETRY_DELAY", c.RetryDelay)
	return c
}

// RetryConfig returns the fixed-delay retry policy used for provider polling.
func (c GitHubConfig) RetryConfig() retry.Config {
	return retry.FixedConfig(c.MaxAttempts, c.RetryDelay)
}

// Validate validates provider configuration.
func (c GitHubConfig) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid GITHUB_API_URL: %q", c.APIURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("RequestTimeout must be greater than 0")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("MaxAttempts must be greater than 0")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("RetryDelay must be non-negative")
	}
	return nil
}

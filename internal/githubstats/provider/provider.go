// Package provider fetches weekly code frequency statistics from the GitHub REST API.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/config"
	"github.com/festy23/palantir/internal/githubstats/model"
	"github.com/festy23/palantir/pkg/retry"
)

const (
	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"
	maxBodySize  = 8 << 20
)

var (
	// ErrStatsNotReady is returned while GitHub is still computing statistics (202).
	ErrStatsNotReady = errors.New("repository statistics are being computed")
	// ErrRepositoryNotFound is returned for unknown or inaccessible repositories (404).
	ErrRepositoryNotFound = errors.New("repository not found or not accessible")
	// ErrTooManyCommits is returned when the repository exceeds GitHub's statistics limit (422).
	ErrTooManyCommits = errors.New("repository has too many commits to compute statistics")
)

// StatusError is an unexpected non-success response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github api error: %s", e.Status)
}

// Client calls the code frequency endpoint, retrying transient failures.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	retry      retry.Config
	logger     *zap.SugaredLogger
}

// NewClient creates a provider client from configuration. Each HTTP attempt
// is bounded by cfg.RequestTimeout.
func NewClient(cfg config.GitHubConfig, logger *zap.SugaredLogger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		retry:      cfg.RetryConfig(),
		logger:     logger,
	}
}

// FetchWeeklyActivity returns the weeks of owner/name with any additions or
// deletions. 404 and 422 responses fail immediately; every other failure is
// retried until the attempt budget is spent, and the last error is returned.
func (c *Client) FetchWeeklyActivity(ctx context.Context, owner, name string) ([]model.WeeklyActivity, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/stats/code_frequency", c.baseURL, url.PathEscape(owner), url.PathEscape(name))

	cfg := c.retry
	cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		c.logger.Infow("GitHub statistics not available yet, retrying",
			"repository", owner+"/"+name,
			"attempt", attempt,
			"max_attempts", cfg.MaxAttempts,
			"delay", delay,
			"reason", err,
		)
	}

	return retry.DoWithResult(ctx, cfg, func() ([]model.WeeklyActivity, error) {
		return c.fetchOnce(ctx, endpoint)
	})
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) ([]model.WeeklyActivity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request code frequency: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return []model.WeeklyActivity{}, nil
	case http.StatusAccepted:
		return nil, ErrStatsNotReady
	case http.StatusNotFound:
		return nil, retry.Permanent(ErrRepositoryNotFound)
	case http.StatusUnprocessableEntity:
		return nil, retry.Permanent(ErrTooManyCommits)
	default:
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var weeks [][]float64
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&weeks); err != nil {
		return nil, fmt.Errorf("decode code frequency: %w", err)
	}
	return toActivity(weeks), nil
}

// toActivity maps [week, additions, -deletions] triples, dropping malformed
// entries and weeks without changes.
func toActivity(weeks [][]float64) []model.WeeklyActivity {
	out := make([]model.WeeklyActivity, 0, len(weeks))
	for _, w := range weeks {
		if len(w) != 3 {
			continue
		}
		a := model.WeeklyActivity{
			Week:      int64(w[0]),
			Additions: max(int64(w[1]), 0),
			Deletions: abs(int64(w[2])),
		}
		if a.Additions == 0 && a.Deletions == 0 {
			continue
		}
		out = append(out, a)
	}
	return out
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

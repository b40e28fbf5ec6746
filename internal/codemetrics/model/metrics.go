// Package model provides report models over ingested weekly statistics.
package model

import (
	"errors"
	"time"
)

// Weekly window bounds.
const (
	DefaultWeeks = 12
	MaxWeeks     = 104
)

var (
	// ErrInvalidWeeks indicates a weekly window outside 1..MaxWeeks.
	ErrInvalidWeeks = errors.New("invalid weeks")
	// ErrProjectNotFound indicates that the requested project does not exist.
	ErrProjectNotFound = errors.New("project not found")
)

// WeeklyMetrics sums all projects for one week.
type WeeklyMetrics struct {
	WeekDate       time.Time `json:"week_date"`
	TotalAdditions int64     `json:"total_additions"`
	TotalDeletions int64     `json:"total_deletions"`
	TotalChanges   int64     `json:"total_changes"`
	ProjectsCount  int64     `json:"projects_count"`
}

// ProjectMetrics sums all weeks of one project.
type ProjectMetrics struct {
	ProjectID      int64   `json:"project_id"`
	ProjectName    string  `json:"project_name"`
	Repository     *string `json:"repository"`
	TotalAdditions int64   `json:"total_additions"`
	TotalDeletions int64   `json:"total_deletions"`
	TotalChanges   int64   `json:"total_changes"`
	WeeksTracked   int64   `json:"weeks_tracked"`
}

// Totals sums every stored statistic.
type Totals struct {
	TotalAdditions  int64 `json:"total_additions"`
	TotalDeletions  int64 `json:"total_deletions"`
	TotalChanges    int64 `json:"total_changes"`
	ProjectsTracked int64 `json:"projects_tracked"`
	WeeksWithData   int64 `json:"weeks_with_data"`
}

// ProjectWeek is one week of a single project.
type ProjectWeek struct {
	WeekDate  time.Time `json:"week_date"`
	Additions int64     `json:"additions"`
	Deletions int64     `json:"deletions"`
	NetLines  int64     `json:"net_lines"`
}

// Report combines the weekly, per-project and total views.
type Report struct {
	Weekly   []WeeklyMetrics  `json:"weekly_metrics"`
	Projects []ProjectMetrics `json:"project_metrics"`
	Totals   Totals           `json:"total_stats"`
}

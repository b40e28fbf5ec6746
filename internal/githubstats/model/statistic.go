// Package model provides domain models for commit-activity statistics.
package model

import (
	"errors"
	"time"
)

var (
	// ErrInvalidRepositoryReference indicates a repository reference that is
	// neither a GitHub URL nor an owner/name pair.
	ErrInvalidRepositoryReference = errors.New("invalid repository reference")
	// ErrProjectNotFound indicates that the requested project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNoRepository indicates that the project has no repository reference.
	ErrNoRepository = errors.New("project has no repository")
)

// WeeklyStatistic represents a row of the github_statistics table.
// At most one row exists per (project, week).
type WeeklyStatistic struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	ProjectID int64     `gorm:"column:project_id" json:"project_id"`
	WeekDate  time.Time `gorm:"column:week_date" json:"week_date"`
	Additions int64     `gorm:"column:additions" json:"additions"`
	Deletions int64     `gorm:"column:deletions" json:"deletions"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (WeeklyStatistic) TableName() string {
	return "github_statistics"
}

// WeeklyActivity is one week of the provider's code frequency response.
// Deletions are a non-negative magnitude.
type WeeklyActivity struct {
	Week      int64 `json:"week"`
	Additions int64 `json:"additions"`
	Deletions int64 `json:"deletions"`
}

// ProjectRepository is a project with its repository reference.
type ProjectRepository struct {
	ID         int64
	Name       string
	Repository string
}

// NormalizeToWeekStart returns the Monday of the week containing unixSeconds
// in loc, as a calendar date at midnight UTC.
func NormalizeToWeekStart(unixSeconds int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t := time.Unix(unixSeconds, 0).In(loc)
	back := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-back, 0, 0, 0, 0, time.UTC)
}

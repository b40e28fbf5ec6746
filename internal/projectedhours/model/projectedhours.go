// Package model provides domain models for projected hours.
package model

import (
	"errors"
	"fmt"
	"time"
)

// Accepted year range of a projected-hours period.
const (
	MinYear = 2000
	MaxYear = 2100
)

var (
	// ErrInvalidProjectedHours indicates an entry failed validation. It is wrapped with the detail.
	ErrInvalidProjectedHours = errors.New("invalid projected hours")
	// ErrProjectNotFound indicates an entry references an unknown project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNotFound indicates that the projected-hours row does not exist.
	ErrNotFound = errors.New("projected hours not found")
)

// ProjectedHours represents a row of the project_projected_hours table.
type ProjectedHours struct {
	ID             int64     `gorm:"primaryKey;column:id" json:"id"`
	ProjectID      int64     `gorm:"column:project_id" json:"project_id"`
	Year           int       `gorm:"column:year" json:"year"`
	Month          int       `gorm:"column:month" json:"month"`
	ProjectedHours float64   `gorm:"column:projected_hours" json:"projected_hours"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (ProjectedHours) TableName() string {
	return "project_projected_hours"
}

// Entry is one (project, year, month, hours) tuple to upsert.
type Entry struct {
	ProjectID      int64   `json:"project_id"`
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	ProjectedHours float64 `json:"projected_hours"`
}

// BulkRequest is the body of PUT /projected-hours/bulk.
type BulkRequest struct {
	Entries []Entry `json:"entries"`
}

// Validate checks the entry against the accepted ranges.
func (e Entry) Validate() error {
	switch {
	case e.ProjectID <= 0:
		return fmt.Errorf("%w: project_id must be a positive integer", ErrInvalidProjectedHours)
	case e.Year < MinYear || e.Year > MaxYear:
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidProjectedHours, MinYear, MaxYear)
	case e.Month < 1 || e.Month > 12:
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidProjectedHours)
	case e.ProjectedHours < 0:
		return fmt.Errorf("%w: projected_hours must be non-negative", ErrInvalidProjectedHours)
	}
	return nil
}

type key struct {
	projectID   int64
	year, month int
}

// Dedupe collapses entries sharing a (project, year, month) key. The last
// value wins and keeps the position of the first occurrence.
func Dedupe(entries []Entry) []Entry {
	index := make(map[key]int, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		k := key{e.ProjectID, e.Year, e.Month}
		if i, ok := index[k]; ok {
			out[i] = e
			continue
		}
		index[k] = len(out)
		out = append(out, e)
	}
	return out
}

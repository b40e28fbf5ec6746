package model

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// MaxNameLength is the longest accepted project name.
const MaxNameLength = 255

// Normalize validates req and converts it into a Project. id is zero for new projects.
// An empty status defaults to Active; blank optional strings become NULL.
func (req ProjectRequest) Normalize(id int64) (*Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidProject, MaxNameLength)
	}
	if req.ClientID <= 0 || req.TeamID <= 0 {
		return nil, fmt.Errorf("%w: client_id and team_id must be positive integers", ErrInvalidProject)
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusActive
	}
	if !IsStatus(status) {
		return nil, fmt.Errorf("%w: status must be one of %s", ErrInvalidProject, strings.Join(Statuses, ", "))
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidProject)
	}

	return &Project{
		ID:          id,
		Name:        name,
		Description: optional(req.Description),
		Repository:  optional(req.Repository),
		ClientID:    req.ClientID,
		TeamID:      req.TeamID,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// IsStatus reports whether s is a known project status.
func IsStatus(s string) bool {
	return slices.Contains(Statuses, s)
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseDate(field string, s *string) (*time.Time, error) {
	v := optional(s)
	if v == nil {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, *v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be formatted as YYYY-MM-DD", ErrInvalidProject, field)
	}
	return &d, nil
}

// Package model provides domain models for capacity analysis.
package model

import "errors"

// ErrInvalidPeriod indicates a year, month or month count outside the accepted range.
var ErrInvalidPeriod = errors.New("invalid period")

// Capacity status labels, from most slack to most overcommitted.
const (
	StatusExcessHigh       = "excess-high"
	StatusExcessLow        = "excess-low"
	StatusOptimal          = "optimal"
	StatusShortageModerate = "shortage-moderate"
	StatusShortageHigh     = "shortage-high"
)

// Summary window bounds.
const (
	DefaultSummaryMonths = 6
	MaxSummaryMonths     = 24
)

// TeamRow is the current member capacity of a team.
type TeamRow struct {
	ID               int64
	Name             string
	MemberCount      int64
	TotalMemberHours float64
}

// ProjectRow is a project with its projected hours for the requested month,
// zero when no row is stored.
type ProjectRow struct {
	ID             int64
	Name           string
	ClientName     string
	TeamID         int64
	Status         string
	ProjectedHours float64
}

// ProjectCapacity is a project contributing to a team's projected hours.
type ProjectCapacity struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	ClientName     string  `json:"client_name"`
	Status         string  `json:"status"`
	ProjectedHours float64 `json:"projected_hours"`
}

// TeamCapacity is the capacity snapshot of one team for one month.
type TeamCapacity struct {
	TeamID                int64             `json:"team_id"`
	TeamName              string            `json:"team_name"`
	MemberCount           int64             `json:"member_count"`
	TotalMemberHours      float64           `json:"total_member_hours"`
	TotalProjectedHours   float64           `json:"total_projected_hours"`
	CapacityDifference    float64           `json:"capacity_difference"`
	UtilizationPercentage int               `json:"utilization_percentage"`
	Status                string            `json:"status"`
	Projects              []ProjectCapacity `json:"projects"`
}

// MonthCapacity groups team snapshots of a month.
type MonthCapacity struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Teams []TeamCapacity `json:"teams"`
}

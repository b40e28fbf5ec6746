// Package model provides domain models for people reports.
package model

// Labels used for people missing a role, seniority or team.
const (
	NoRole      = "No Role"
	NoSeniority = "No Seniority"
	NoTeam      = "No Team"
)

// PersonRow is the slice of a person the report partitions on.
type PersonRow struct {
	ID        int64
	Name      string
	Seniority *string
	TeamName  *string
	RoleName  *string
}

// Filter restricts the report. Empty fields match everyone; set fields are ANDed.
// Fields compare against the resolved labels, so Team "No Team" selects unassigned people.
type Filter struct {
	Team      string `form:"team"`
	Role      string `form:"role"`
	Seniority string `form:"seniority"`
}

// Partition is one group of a distribution.
type Partition struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// TeamStats is the distribution of the filtered people by role, seniority and team.
type TeamStats struct {
	Total       int         `json:"total"`
	ByRole      []Partition `json:"by_role"`
	BySeniority []Partition `json:"by_seniority"`
	ByTeam      []Partition `json:"by_team"`
}

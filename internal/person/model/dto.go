package model

// PersonRequest is the body of POST /people and PUT /people/:id.
// Empty enum strings are treated as unset.
type PersonRequest struct {
	Name         string   `json:"name" binding:"required"`
	Seniority    *string  `json:"seniority"`
	Contract     *string  `json:"contract"`
	EnglishLevel *string  `json:"english_level"`
	TeamID       *int64   `json:"team_id"`
	RoleID       *int64   `json:"role_id"`
	MonthlyHours *float64 `json:"monthly_hours"`
}

// AssignTeamRequest is the body of PATCH /people/:id/team. A null team_id
// moves the person to the unassigned pool.
type AssignTeamRequest struct {
	TeamID *int64 `json:"team_id"`
}

// ListFilter narrows GET /people.
type ListFilter struct {
	TeamID     *int64
	RoleID     *int64
	Seniority  string
	Unassigned bool
}

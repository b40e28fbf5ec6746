package model

// MaxNameLength is the longest accepted team name.
const MaxNameLength = 255

// CreateTeamRequest is the body of POST /teams and PUT /teams/:id.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// TeamSummary is a team with its usage counters.
type TeamSummary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	MemberCount  int64   `json:"member_count"`
	ProjectCount int64   `json:"project_count"`
	TotalHours   float64 `json:"total_monthly_hours"`
}

// TeamMember is a person assigned to a team.
type TeamMember struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Seniority    *string `json:"seniority"`
	RoleName     *string `json:"role"`
	MonthlyHours float64 `json:"monthly_hours"`
}

// TeamDetails is a team with its members.
type TeamDetails struct {
	Team
	Members []TeamMember `json:"members"`
}

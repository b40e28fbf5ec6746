// Package model provides domain models and DTOs for project module.
package model

import "time"

// Project statuses.
const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusCompleted = "Completed"
	StatusOnHold    = "On Hold"
)

// Statuses lists every accepted project status.
var Statuses = []string{StatusActive, StatusInactive, StatusCompleted, StatusOnHold}

// DateLayout is the wire format of start_date and end_date.
const DateLayout = "2006-01-02"

// Project represents a row of the projects table.
type Project struct {
	ID          int64      `gorm:"primaryKey;column:id" json:"id"`
	Name        string     `gorm:"column:name" json:"name"`
	Description *string    `gorm:"column:description" json:"description"`
	Repository  *string    `gorm:"column:repository" json:"repository"`
	ClientID    int64      `gorm:"column:client_id" json:"client_id"`
	TeamID      int64      `gorm:"column:team_id" json:"team_id"`
	Status      string     `gorm:"column:status" json:"status"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Project) TableName() string {
	return "projects"
}

// ProjectView is a project with its client and team names.
type ProjectView struct {
	Project
	ClientName string `json:"client_name"`
	TeamName   string `json:"team_name"`
}

// ProjectRequest is the body of POST /projects and PUT /projects/:id.
type ProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Repository  *string `json:"repository"`
	ClientID    int64   `json:"client_id" binding:"required"`
	TeamID      int64   `json:"team_id" binding:"required"`
	Status      string  `json:"status"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// ListFilter narrows GET /projects.
type ListFilter struct {
	Status string
	TeamID *int64
}

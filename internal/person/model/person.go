// Package model provides domain models and DTOs for person module.
package model

import "time"

// DefaultMonthlyHours is applied when a person is created without monthly hours.
const DefaultMonthlyHours = 160

// Seniority levels, lowest first.
var Seniorities = []string{"JR I", "JR II", "SSR I", "SSR II", "SR I", "SR II"}

// Contract types.
var Contracts = []string{"Employee", "Contractor"}

// EnglishLevels are CEFR levels.
var EnglishLevels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// Person represents a row of the people table.
type Person struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	Seniority    *string   `gorm:"column:seniority" json:"seniority"`
	Contract     *string   `gorm:"column:contract" json:"contract"`
	EnglishLevel *string   `gorm:"column:english_level" json:"english_level"`
	TeamID       *int64    `gorm:"column:team_id" json:"team_id"`
	RoleID       *int64    `gorm:"column:role_id" json:"role_id"`
	MonthlyHours float64   `gorm:"column:monthly_hours" json:"monthly_hours"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Person) TableName() string {
	return "people"
}

// PersonView is a person with the names of the team and role it references.
type PersonView struct {
	Person
	TeamName *string `json:"team_name"`
	RoleName *string `json:"role_name"`
}

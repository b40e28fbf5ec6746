// Package model provides domain models for role module.
package model

import (
	"errors"
	"time"
)

// MaxNameLength is the longest accepted role name.
const MaxNameLength = 255

// Role is a job role a person can hold.
type Role struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Role) TableName() string {
	return "roles"
}

// RoleSummary is a role with the number of people holding it.
type RoleSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PeopleCount int64  `json:"people_count"`
}

// CreateRoleRequest is the body of POST /roles.
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required"`
}

var (
	// ErrRoleExists indicates a duplicate role name.
	ErrRoleExists = errors.New("role already exists")
	// ErrRoleNotFound indicates that the requested role does not exist.
	ErrRoleNotFound = errors.New("role not found")
	// ErrInvalidRoleName indicates an empty or overlong name.
	ErrInvalidRoleName = errors.New("invalid role name")
	// ErrRoleInUse indicates that people still hold the role.
	ErrRoleInUse = errors.New("role is in use")
)

// Package model provides domain models for client module.
package model

import (
	"errors"
	"time"
)

// MaxNameLength is the longest accepted client name.
const MaxNameLength = 255

// Client is a customer projects are delivered for.
type Client struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Client) TableName() string {
	return "clients"
}

// ClientSummary is a client with its project counters.
type ClientSummary struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	ProjectCount       int64  `json:"project_count"`
	ActiveProjectCount int64  `json:"active_project_count"`
}

// CreateClientRequest is the body of POST /clients.
type CreateClientRequest struct {
	Name string `json:"name" binding:"required"`
}

var (
	ErrClientExists      = errors.New("client already exists")
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientName = errors.New("invalid client name")
	// ErrClientInUse indicates that projects still belong to the client.
	ErrClientInUse = errors.New("client is in use")
)

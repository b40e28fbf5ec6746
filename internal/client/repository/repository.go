// Package repository provides data access layer for client module.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	clientModel "github.com/festy23/palantir/internal/client/model"
	"github.com/festy23/palantir/internal/database/dberr"
)

// Repository defines client data access operations.
type Repository interface {
	Create(ctx context.Context, name string) (*clientModel.Client, error)
	List(ctx context.Context) ([]clientModel.ClientSummary, error)
	// Delete fails with ErrClientInUse while any project references the client.
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new client repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, name string) (*clientModel.Client, error) {
	client := &clientModel.Client{Name: name}
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, clientModel.ErrClientExists
		}
		return nil, fmt.Errorf("create client: %w", err)
	}
	r.logger.Debugw("client created", "client_id", client.ID)
	return client, nil
}

func (r *repository) List(ctx context.Context) ([]clientModel.ClientSummary, error) {
	var clients []clientModel.ClientSummary
	err := r.db.WithContext(ctx).
		Table("clients c").
		Select(`c.id, c.name,
			COUNT(p.id) AS project_count,
			COUNT(CASE WHEN p.status = 'Active' THEN 1 END) AS active_project_count`).
		Joins("LEFT JOIN projects p ON p.client_id = c.id").
		Group("c.id, c.name").
		Order("c.name ASC").
		Scan(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	if clients == nil {
		return []clientModel.ClientSummary{}, nil
	}
	return clients, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&clientModel.Client{}, id)
	if result.Error != nil {
		if dberr.IsForeignKeyViolation(result.Error) {
			return clientModel.ErrClientInUse
		}
		return fmt.Errorf("delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return clientModel.ErrClientNotFound
	}
	return nil
}

// Package repository provides data access layer for project module.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/database/dberr"
	projectModel "github.com/festy23/palantir/internal/project/model"
)

// Repository defines the interface for project data access operations.
type Repository interface {
	Create(ctx context.Context, p *projectModel.Project) error
	Update(ctx context.Context, p *projectModel.Project) error
	GetByID(ctx context.Context, id int64) (*projectModel.ProjectView, error)
	List(ctx context.Context, filter projectModel.ListFilter) ([]projectModel.ProjectView, error)

	// Delete removes a project together with its weekly statistics and
	// projected hours in one transaction.
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new project repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, p *projectModel.Project) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return translate("create project", err)
	}
	r.logger.Debugw("project created", "project_id", p.ID)
	return nil
}

func (r *repository) Update(ctx context.Context, p *projectModel.Project) error {
	result := r.db.WithContext(ctx).
		Model(&projectModel.Project{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"repository":  p.Repository,
			"client_id":   p.ClientID,
			"team_id":     p.TeamID,
			"status":      p.Status,
			"start_date":  p.StartDate,
			"end_date":    p.EndDate,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return translate("update project", result.Error)
	}
	if result.RowsAffected == 0 {
		return projectModel.ErrProjectNotFound
	}
	return nil
}

func (r *repository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("projects p").
		Select("p.*, c.name AS client_name, t.name AS team_name").
		Joins("JOIN clients c ON c.id = p.client_id").
		Joins("JOIN teams t ON t.id = p.team_id")
}

func (r *repository) GetByID(ctx context.Context, id int64) (*projectModel.ProjectView, error) {
	var projects []projectModel.ProjectView
	if err := r.query(ctx).Where("p.id = ?", id).Limit(1).Scan(&projects).Error; err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if len(projects) == 0 {
		return nil, projectModel.ErrProjectNotFound
	}
	return &projects[0], nil
}

func (r *repository) List(ctx context.Context, filter projectModel.ListFilter) ([]projectModel.ProjectView, error) {
	q := r.query(ctx)
	if filter.Status != "" {
		q = q.Where("p.status = ?", filter.Status)
	}
	if filter.TeamID != nil {
		q = q.Where("p.team_id = ?", *filter.TeamID)
	}

	var projects []projectModel.ProjectView
	if err := q.Order("p.name ASC").Scan(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if projects == nil {
		return []projectModel.ProjectView{}, nil
	}
	return projects, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stats := tx.Exec("DELETE FROM github_statistics WHERE project_id = ?", id)
		if stats.Error != nil {
			return fmt.Errorf("delete project statistics: %w", stats.Error)
		}
		hours := tx.Exec("DELETE FROM project_projected_hours WHERE project_id = ?", id)
		if hours.Error != nil {
			return fmt.Errorf("delete projected hours: %w", hours.Error)
		}

		result := tx.Delete(&projectModel.Project{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return projectModel.ErrProjectNotFound
		}

		r.logger.Debugw("project deleted",
			"project_id", id,
			"statistics_removed", stats.RowsAffected,
			"projected_hours_removed", hours.RowsAffected,
		)
		return nil
	})
}

func translate(op string, err error) error {
	switch {
	case dberr.IsUniqueViolation(err):
		return projectModel.ErrProjectExists
	case dberr.IsForeignKeyViolation(err):
		return projectModel.ErrInvalidReference
	case dberr.IsCheckViolation(err):
		return fmt.Errorf("%w: %v", projectModel.ErrInvalidProject, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

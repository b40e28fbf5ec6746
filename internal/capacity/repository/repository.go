// Package repository loads the current state capacity is computed from.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	capacityModel "github.com/festy23/palantir/internal/capacity/model"
	projectModel "github.com/festy23/palantir/internal/project/model"
)

// Repository defines capacity data access operations.
type Repository interface {
	// Teams returns every team with its member count and summed monthly hours.
	// People without a team are not counted anywhere.
	Teams(ctx context.Context) ([]capacityModel.TeamRow, error)

	// Projects returns Active and On Hold projects with their projected hours
	// for the given month.
	Projects(ctx context.Context, year, month int) ([]capacityModel.ProjectRow, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new capacity repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Teams(ctx context.Context) ([]capacityModel.TeamRow, error) {
	var teams []capacityModel.TeamRow
	err := r.db.WithContext(ctx).
		Table("teams t").
		Select(`t.id, t.name,
			COUNT(p.id) AS member_count,
			COALESCE(SUM(p.monthly_hours), 0) AS total_member_hours`).
		Joins("LEFT JOIN people p ON p.team_id = t.id").
		Group("t.id, t.name").
		Order("t.name ASC").
		Scan(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("load team capacity: %w", err)
	}
	return teams, nil
}

func (r *repository) Projects(ctx context.Context, year, month int) ([]capacityModel.ProjectRow, error) {
	var projects []capacityModel.ProjectRow
	err := r.db.WithContext(ctx).
		Table("projects pr").
		Select(`pr.id, pr.name, c.name AS client_name, pr.team_id, pr.status,
			COALESCE(ph.projected_hours, 0) AS projected_hours`).
		Joins("JOIN clients c ON c.id = pr.client_id").
		Joins("LEFT JOIN project_projected_hours ph ON ph.project_id = pr.id AND ph.year = ? AND ph.month = ?", year, month).
		Where("pr.status IN ?", []string{projectModel.StatusActive, projectModel.StatusOnHold}).
		Order("pr.name ASC").
		Scan(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("load project hours: %w", err)
	}
	r.logger.Debugw("capacity projects loaded", "year", year, "month", month, "count", len(projects))
	return projects, nil
}

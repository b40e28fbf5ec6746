// Package repository runs aggregate queries over weekly statistics.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/codemetrics/model"
)

// Repository defines code metrics queries.
type Repository interface {
	// Weekly sums statistics per week for weeks on or after since, oldest first.
	Weekly(ctx context.Context, since time.Time) ([]model.WeeklyMetrics, error)

	// Projects sums statistics of every project with a repository, by additions descending.
	Projects(ctx context.Context) ([]model.ProjectMetrics, error)

	Totals(ctx context.Context) (*model.Totals, error)

	// ProjectWeekly returns the weeks of one project, oldest first.
	ProjectWeekly(ctx context.Context, projectID int64) ([]model.ProjectWeek, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new code metrics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Weekly(ctx context.Context, since time.Time) ([]model.WeeklyMetrics, error) {
	weeks := []model.WeeklyMetrics{}
	err := r.db.WithContext(ctx).
		Table("github_statistics").
		Select(`week_date,
			SUM(additions) AS total_additions,
			SUM(deletions) AS total_deletions,
			SUM(additions + deletions) AS total_changes,
			COUNT(DISTINCT project_id) AS projects_count`).
		Where("week_date >= ?", since).
		Group("week_date").
		Order("week_date ASC").
		Scan(&weeks).Error
	if err != nil {
		return nil, fmt.Errorf("weekly code metrics: %w", err)
	}
	return weeks, nil
}

func (r *repository) Projects(ctx context.Context) ([]model.ProjectMetrics, error) {
	projects := []model.ProjectMetrics{}
	err := r.db.WithContext(ctx).
		Table("projects p").
		Select(`p.id AS project_id, p.name AS project_name, p.repository,
			COALESCE(SUM(gs.additions), 0) AS total_additions,
			COALESCE(SUM(gs.deletions), 0) AS total_deletions,
			COALESCE(SUM(gs.additions + gs.deletions), 0) AS total_changes,
			COUNT(gs.id) AS weeks_tracked`).
		Joins("LEFT JOIN github_statistics gs ON gs.project_id = p.id").
		Where("p.repository IS NOT NULL AND p.repository <> ''").
		Group("p.id, p.name, p.repository").
		Order("total_additions DESC, p.name ASC").
		Scan(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("project code metrics: %w", err)
	}
	return projects, nil
}

func (r *repository) Totals(ctx context.Context) (*model.Totals, error) {
	var totals model.Totals
	err := r.db.WithContext(ctx).
		Table("github_statistics").
		Select(`COALESCE(SUM(additions), 0) AS total_additions,
			COALESCE(SUM(deletions), 0) AS total_deletions,
			COALESCE(SUM(additions + deletions), 0) AS total_changes,
			COUNT(DISTINCT project_id) AS projects_tracked,
			COUNT(DISTINCT week_date) AS weeks_with_data`).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("total code metrics: %w", err)
	}
	return &totals, nil
}

func (r *repository) ProjectWeekly(ctx context.Context, projectID int64) ([]model.ProjectWeek, error) {
	var exists int64
	if err := r.db.WithContext(ctx).Table("projects").Where("id = ?", projectID).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if exists == 0 {
		return nil, model.ErrProjectNotFound
	}

	weeks := []model.ProjectWeek{}
	err := r.db.WithContext(ctx).
		Table("github_statistics").
		Select("week_date, additions, deletions, additions - deletions AS net_lines").
		Where("project_id = ?", projectID).
		Order("week_date ASC").
		Scan(&weeks).Error
	if err != nil {
		return nil, fmt.Errorf("project weekly metrics: %w", err)
	}
	return weeks, nil
}

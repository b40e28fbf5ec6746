// Package service builds code metrics reports.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/codemetrics/model"
	"github.com/festy23/palantir/internal/codemetrics/repository"
)

// Service defines code metrics operations.
type Service interface {
	// WeeklyMetrics covers the last weeks weeks.
	WeeklyMetrics(ctx context.Context, weeks int) ([]model.WeeklyMetrics, error)
	ProjectMetrics(ctx context.Context) ([]model.ProjectMetrics, error)
	Totals(ctx context.Context) (*model.Totals, error)
	ProjectWeekly(ctx context.Context, projectID int64) ([]model.ProjectWeek, error)
	// Report combines WeeklyMetrics, ProjectMetrics and Totals.
	Report(ctx context.Context, weeks int) (*model.Report, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new code metrics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger, now: time.Now}
}

func (s *service) WeeklyMetrics(ctx context.Context, weeks int) ([]model.WeeklyMetrics, error) {
	if weeks < 1 || weeks > model.MaxWeeks {
		return nil, fmt.Errorf("%w: weeks must be between 1 and %d", model.ErrInvalidWeeks, model.MaxWeeks)
	}
	y, m, d := s.now().UTC().AddDate(0, 0, -7*weeks).Date()
	return s.repo.Weekly(ctx, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func (s *service) ProjectMetrics(ctx context.Context) ([]model.ProjectMetrics, error) {
	return s.repo.Projects(ctx)
}

func (s *service) Totals(ctx context.Context) (*model.Totals, error) {
	return s.repo.Totals(ctx)
}

func (s *service) ProjectWeekly(ctx context.Context, projectID int64) ([]model.ProjectWeek, error) {
	return s.repo.ProjectWeekly(ctx, projectID)
}

func (s *service) Report(ctx context.Context, weeks int) (*model.Report, error) {
	weekly, err := s.WeeklyMetrics(ctx, weeks)
	if err != nil {
		return nil, err
	}
	projects, err := s.ProjectMetrics(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.Totals(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("Code metrics report built", "weeks", weeks, "projects", len(projects))
	return &model.Report{Weekly: weekly, Projects: projects, Totals: *totals}, nil
}

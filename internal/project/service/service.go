// Package service provides business logic layer for project module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	projectModel "github.com/festy23/palantir/internal/project/model"
	"github.com/festy23/palantir/internal/project/repository"
)

// Service defines the interface for project business logic operations.
type Service interface {
	CreateProject(ctx context.Context, req projectModel.ProjectRequest) (*projectModel.ProjectView, error)
	UpdateProject(ctx context.Context, id int64, req projectModel.ProjectRequest) (*projectModel.ProjectView, error)
	GetProject(ctx context.Context, id int64) (*projectModel.ProjectView, error)
	ListProjects(ctx context.Context, filter projectModel.ListFilter) ([]projectModel.ProjectView, error)
	DeleteProject(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new project service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateProject(ctx context.Context, req projectModel.ProjectRequest) (*projectModel.ProjectView, error) {
	p, err := req.Normalize(0)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Infow("Project created", "project_id", p.ID, "name", p.Name, "team_id", p.TeamID)
	return s.repo.GetByID(ctx, p.ID)
}

func (s *service) UpdateProject(ctx context.Context, id int64, req projectModel.ProjectRequest) (*projectModel.ProjectView, error) {
	p, err := req.Normalize(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Infow("Project updated", "project_id", id, "status", p.Status)
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetProject(ctx context.Context, id int64) (*projectModel.ProjectView, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProjects(ctx context.Context, filter projectModel.ListFilter) ([]projectModel.ProjectView, error) {
	if filter.Status != "" && !projectModel.IsStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", projectModel.ErrInvalidProject, filter.Status)
	}
	return s.repo.List(ctx, filter)
}

func (s *service) DeleteProject(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Project deleted", "project_id", id)
	return nil
}

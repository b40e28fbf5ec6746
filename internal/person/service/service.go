// Package service provides business logic layer for person module.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	personModel "github.com/festy23/palantir/internal/person/model"
	"github.com/festy23/palantir/internal/person/repository"
)

// Service defines the interface for person business logic operations.
type Service interface {
	CreatePerson(ctx context.Context, req personModel.PersonRequest) (*personModel.PersonView, error)
	UpdatePerson(ctx context.Context, id int64, req personModel.PersonRequest) (*personModel.PersonView, error)
	GetPerson(ctx context.Context, id int64) (*personModel.PersonView, error)
	ListPeople(ctx context.Context, filter personModel.ListFilter) ([]personModel.PersonView, error)
	// AssignTeam moves a person to teamID, or to the unassigned pool when nil.
	AssignTeam(ctx context.Context, id int64, teamID *int64) (*personModel.PersonView, error)
	DeletePerson(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new person service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreatePerson(ctx context.Context, req personModel.PersonRequest) (*personModel.PersonView, error) {
	p, err := req.Normalize(0)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Infow("Person created", "person_id", p.ID, "team_id", p.TeamID)
	return s.repo.GetByID(ctx, p.ID)
}

func (s *service) UpdatePerson(ctx context.Context, id int64, req personModel.PersonRequest) (*personModel.PersonView, error) {
	p, err := req.Normalize(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetPerson(ctx context.Context, id int64) (*personModel.PersonView, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListPeople(ctx context.Context, filter personModel.ListFilter) ([]personModel.PersonView, error) {
	if filter.Seniority != "" && !personModel.IsSeniority(filter.Seniority) {
		return nil, fmt.Errorf("%w: unknown seniority %q", personModel.ErrInvalidPerson, filter.Seniority)
	}
	return s.repo.List(ctx, filter)
}

func (s *service) AssignTeam(ctx context.Context, id int64, teamID *int64) (*personModel.PersonView, error) {
	if teamID != nil && *teamID <= 0 {
		return nil, fmt.Errorf("%w: team_id must be a positive integer", personModel.ErrInvalidPerson)
	}
	if err := s.repo.AssignTeam(ctx, id, teamID); err != nil {
		return nil, err
	}
	s.logger.Infow("Person reassigned", "person_id", id, "team_id", teamID)
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeletePerson(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Person deleted", "person_id", id)
	return nil
}

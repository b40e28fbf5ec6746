// Package service provides business logic layer for role module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	roleModel "github.com/festy23/palantir/internal/role/model"
	"github.com/festy23/palantir/internal/role/repository"
)

// Service defines role business operations.
type Service interface {
	CreateRole(ctx context.Context, name string) (*roleModel.Role, error)
	ListRoles(ctx context.Context) ([]roleModel.RoleSummary, error)
	DeleteRole(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new role service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateRole(ctx context.Context, name string) (*roleModel.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > roleModel.MaxNameLength {
		return nil, roleModel.ErrInvalidRoleName
	}
	role, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Role created", "role_id", role.ID, "name", role.Name)
	return role, nil
}

func (s *service) ListRoles(ctx context.Context) ([]roleModel.RoleSummary, error) {
	return s.repo.List(ctx)
}

func (s *service) DeleteRole(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Role deleted", "role_id", id)
	return nil
}

// Package service provides business logic layer for client module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	clientModel "github.com/festy23/palantir/internal/client/model"
	"github.com/festy23/palantir/internal/client/repository"
)

// Service defines client business operations.
type Service interface {
	CreateClient(ctx context.Context, name string) (*clientModel.Client, error)
	ListClients(ctx context.Context) ([]clientModel.ClientSummary, error)
	DeleteClient(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new client service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateClient(ctx context.Context, name string) (*clientModel.Client, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" || len(name) > clientModel.MaxNameLength {
		return nil, clientModel.ErrInvalidClientName
	}
	client, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Client created", "client_id", client.ID, "name", client.Name)
	return client, nil
}

func (s *service) ListClients(ctx context.Context) ([]clientModel.ClientSummary, error) {
	return s.repo.List(ctx)
}

func (s *service) DeleteClient(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Client deleted", "client_id", id)
	return nil
}

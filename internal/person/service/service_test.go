package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	personModel "github.com/festy23/palantir/internal/person/model"
	"github.com/festy23/palantir/internal/person/repository"
)

type mockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*mockRepository)(nil)

func (m *mockRepository) Create(ctx context.Context, p *personModel.Person) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, p *personModel.Person) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*personModel.PersonView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*personModel.PersonView), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, filter personModel.ListFilter) ([]personModel.PersonView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]personModel.PersonView), args.Error(1)
}

func (m *mockRepository) AssignTeam(ctx context.Context, id int64, teamID *int64) error {
	return m.Called(ctx, id, teamID).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_CreatePerson(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := New(repo, zap.NewNop().Sugar())

	repo.On("Create", ctx, mock.MatchedBy(func(p *personModel.Person) bool {
		return p.Name == "Ann" && p.MonthlyHours == personModel.DefaultMonthlyHours
	})).Return(nil)
	repo.On("GetByID", ctx, int64(1)).Return(&personModel.PersonView{Person: personModel.Person{ID: 1, Name: "Ann"}}, nil)

	got, err := svc.CreatePerson(ctx, personModel.PersonRequest{Name: " Ann "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	repo.AssertExpectations(t)
}

func TestService_CreatePersonInvalid(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, zap.NewNop().Sugar())

	_, err := svc.CreatePerson(context.Background(), personModel.PersonRequest{Name: ""})
	assert.ErrorIs(t, err, personModel.ErrInvalidPerson)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ListPeopleRejectsUnknownSeniority(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, zap.NewNop().Sugar())

	_, err := svc.ListPeople(context.Background(), personModel.ListFilter{Seniority: "Principal"})
	assert.ErrorIs(t, err, personModel.ErrInvalidPerson)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestService_AssignTeam(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := New(repo, zap.NewNop().Sugar())

	_, err := svc.AssignTeam(ctx, 3, new(int64))
	assert.ErrorIs(t, err, personModel.ErrInvalidPerson)

	repo.On("AssignTeam", ctx, int64(3), (*int64)(nil)).Return(personModel.ErrPersonNotFound).Once()
	_, err = svc.AssignTeam(ctx, 3, nil)
	assert.ErrorIs(t, err, personModel.ErrPersonNotFound)
	repo.AssertExpectations(t)
}

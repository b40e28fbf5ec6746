package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	teamModel "github.com/festy23/palantir/internal/team/model"
	"github.com/festy23/palantir/internal/team/service"
)

type mockService struct {
	mock.Mock
}

var _ service.Service = (*mockService)(nil)

func (m *mockService) CreateTeam(ctx context.Context, name string) (*teamModel.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.Team), args.Error(1)
}

func (m *mockService) ListTeams(ctx context.Context) ([]teamModel.TeamSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamModel.TeamSummary), args.Error(1)
}

func (m *mockService) GetTeam(ctx context.Context, id int64) (*teamModel.TeamDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.TeamDetails), args.Error(1)
}

func (m *mockService) RenameTeam(ctx context.Context, id int64, name string) (*teamModel.Team, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.Team), args.Error(1)
}

func (m *mockService) DeleteTeam(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, zap.NewNop().Sugar())
	r := gin.New()
	r.POST("/teams", h.CreateTeam)
	r.GET("/teams", h.ListTeams)
	r.GET("/teams/:id", h.GetTeam)
	r.PUT("/teams/:id", h.RenameTeam)
	r.DELETE("/teams/:id", h.DeleteTeam)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateTeam(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "created", body: `{"name":"Core"}`, wantStatus: http.StatusCreated},
		{name: "missing name", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "invalid name", body: `{"name":" "}`, svcErr: teamModel.ErrInvalidTeamName, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "duplicate", body: `{"name":"Core"}`, svcErr: teamModel.ErrTeamExists, wantStatus: http.StatusConflict, wantCode: "TEAM_EXISTS"},
		{name: "internal", body: `{"name":"Core"}`, svcErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.svcErr != nil {
				svc.On("CreateTeam", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			} else {
				svc.On("CreateTeam", mock.Anything, "Core").Return(&teamModel.Team{ID: 1, Name: "Core"}, nil)
			}

			w := do(setupRouter(svc), http.MethodPost, "/teams", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Contains(t, w.Body.String(), `"code":"`+tt.wantCode+`"`)
			} else {
				assert.Contains(t, w.Body.String(), `"name":"Core"`)
			}
		})
	}
}

func TestHandler_ListTeams(t *testing.T) {
	svc := new(mockService)
	svc.On("ListTeams", mock.Anything).Return([]teamModel.TeamSummary{{ID: 1, Name: "Core", MemberCount: 3}}, nil)

	w := do(setupRouter(svc), http.MethodGet, "/teams", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"member_count":3`)
}

func TestHandler_GetTeam(t *testing.T) {
	svc := new(mockService)
	svc.On("GetTeam", mock.Anything, int64(4)).Return(&teamModel.TeamDetails{
		Team:    teamModel.Team{ID: 4, Name: "Data"},
		Members: []teamModel.TeamMember{{ID: 1, Name: "Ann", MonthlyHours: 160}},
	}, nil)
	svc.On("GetTeam", mock.Anything, int64(5)).Return(nil, teamModel.ErrTeamNotFound)
	r := setupRouter(svc)

	w := do(r, http.MethodGet, "/teams/4", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"members":[{"id":1,"name":"Ann"`)

	w = do(r, http.MethodGet, "/teams/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/teams/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RenameAndDelete(t *testing.T) {
	svc := new(mockService)
	svc.On("RenameTeam", mock.Anything, int64(2), "New").Return(&teamModel.Team{ID: 2, Name: "New"}, nil)
	svc.On("DeleteTeam", mock.Anything, int64(2)).Return(nil)
	svc.On("DeleteTeam", mock.Anything, int64(3)).Return(teamModel.ErrTeamInUse)
	r := setupRouter(svc)

	w := do(r, http.MethodPut, "/teams/2", `{"name":"New"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/teams/2", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodDelete, "/teams/3", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "TEAM_IN_USE")
}

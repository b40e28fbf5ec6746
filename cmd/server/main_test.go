package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	capacityModel "github.com/festy23/palantir/internal/capacity/model"
	metricsModel "github.com/festy23/palantir/internal/codemetrics/model"
	"github.com/festy23/palantir/internal/config"
	"github.com/festy23/palantir/internal/database/dbtest"
	reportsModel "github.com/festy23/palantir/internal/reports/model"
)

const cronSecret = "s3cret"

// ServerSuite drives the fully wired router against an in-memory database and
// a fake statistics provider.
type ServerSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	github := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/acme/widgets/stats/code_frequency" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[[1704067200, 10, -2], [1704672000, 3, 0]]`))
	}))
	s.T().Cleanup(github.Close)

	cfg := config.Defaults()
	cfg.GinMode = gin.TestMode
	cfg.GitHub.APIURL = github.URL
	cfg.GitHub.RetryDelay = time.Millisecond
	cfg.Ingestion.CronSecret = cronSecret

	r, err := newRouter(dbtest.Open(s.T()), &cfg, zap.NewNop().Sugar())
	s.Require().NoError(err)
	s.router = r
}

func (s *ServerSuite) do(method, target string, body any, token string) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, target, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ServerSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *ServerSuite) create(target string, body any) int64 {
	w := s.do(http.MethodPost, target, body, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	s.decode(w, &created)
	s.Require().Positive(created.ID)
	return created.ID
}

func (s *ServerSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *ServerSuite) TestDashboardFlow() {
	teamID := s.create("/teams", map[string]any{"name": "Core"})
	roleID := s.create("/roles", map[string]any{"name": "Backend"})
	clientID := s.create("/clients", map[string]any{"name": "Acme"})
	s.create("/people", map[string]any{"name": "Ann", "seniority": "SR I", "team_id": teamID, "role_id": roleID})
	s.create("/people", map[string]any{"name": "Bob", "team_id": teamID})
	projectID := s.create("/projects", map[string]any{
		"name":       "Widgets",
		"client_id":  clientID,
		"team_id":    teamID,
		"repository": "https://github.com/acme/widgets.git",
	})

	w := s.do(http.MethodPut, "/projected-hours/bulk", map[string]any{"entries": []map[string]any{
		{"project_id": projectID, "year": 2025, "month": 3, "projected_hours": 100},
		{"project_id": projectID, "year": 2025, "month": 3, "projected_hours": 400},
	}}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.JSONEq(`{"updated":1}`, w.Body.String())

	w = s.do(http.MethodGet, "/capacity?year=2025&month=3", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var month capacityModel.MonthCapacity
	s.decode(w, &month)
	s.Require().Len(month.Teams, 1)
	s.Equal(int64(2), month.Teams[0].MemberCount)
	s.InDelta(320.0, month.Teams[0].TotalMemberHours, 0.001)
	s.InDelta(400.0, month.Teams[0].TotalProjectedHours, 0.001)
	s.Equal(125, month.Teams[0].UtilizationPercentage)

	w = s.do(http.MethodGet, "/reports/people", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var stats reportsModel.TeamStats
	s.decode(w, &stats)
	s.Equal(2, stats.Total)
	s.Require().Len(stats.ByTeam, 1)
	s.Equal("Core", stats.ByTeam[0].Label)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/cron/github-stats", nil, "").Code)
	w = s.do(http.MethodGet, "/api/cron/github-stats", nil, cronSecret)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"collected":2`)

	w = s.do(http.MethodGet, "/code-metrics", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	var report metricsModel.Report
	s.decode(w, &report)
	s.Require().Len(report.Projects, 1)
	s.Equal(int64(13), report.Projects[0].TotalAdditions)
	s.Equal(int64(2), report.Totals.WeeksWithData)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, fmt.Sprintf("/projects/%d", projectID), nil, "").Code)
	w = s.do(http.MethodGet, "/code-metrics", nil, "")
	s.decode(w, &report)
	s.Zero(report.Totals.TotalAdditions)
	s.Empty(report.Projects)
}

func (s *ServerSuite) TestErrorEnvelope() {
	w := s.do(http.MethodGet, "/projects/42", nil, "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), `"code":"NOT_FOUND"`)

	w = s.do(http.MethodGet, "/capacity?month=13", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), `"code":"INVALID_REQUEST"`)
}

func TestNewRouterRejectsUnknownTimeZone(t *testing.T) {
	cfg := config.Defaults()
	cfg.GinMode = gin.TestMode
	cfg.Ingestion.TimeZone = "Mars/Olympus"

	_, err := newRouter(dbtest.Open(t), &cfg, zap.NewNop().Sugar())
	require.Error(t, err)
}

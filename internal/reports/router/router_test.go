package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/database/dbtest"
)

func TestReportRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := dbtest.Open(t)
	require.NoError(t, db.Exec(`INSERT INTO teams (id, name) VALUES (1, 'Core')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO people (name, seniority, team_id) VALUES ('Ann', 'SR I', 1), ('Bob', 'SR I', NULL)`).Error)
	r := gin.New()
	RegisterRoutes(r, db, zap.NewNop().Sugar())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/people?seniority=SR%20I&team=Core", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"total": 1,
		"by_role": [{"label":"No Role","count":1,"percentage":100}],
		"by_seniority": [{"label":"SR I","count":1,"percentage":100}],
		"by_team": [{"label":"Core","count":1,"percentage":100}]
	}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/people?team=Nowhere", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":0,"by_role":[],"by_seniority":[],"by_team":[]}`, w.Body.String())
}

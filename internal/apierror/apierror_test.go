package apierror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func perform(h gin.HandlerFunc, route, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(route, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestWriters(t *testing.T) {
	w := perform(func(c *gin.Context) { BadRequest(c, "bad") }, "/x", "/x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"code":"INVALID_REQUEST","message":"bad"}}`, w.Body.String())

	w = perform(func(c *gin.Context) { NotFound(c, "team not found") }, "/x", "/x")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"team not found"}}`, w.Body.String())

	w = perform(func(c *gin.Context) { Conflict(c, "TEAM_EXISTS", "exists") }, "/x", "/x")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":{"code":"TEAM_EXISTS","message":"exists"}}`, w.Body.String())
}

func TestInternal_HidesCause(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core).Sugar()

	w := perform(func(c *gin.Context) {
		Internal(c, logger, "failed to load", errors.New("pq: secret detail"), "team_id", 3)
	}, "/x", "/x")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")
	entries := logs.FilterMessage("failed to load").All()
	if assert.Len(t, entries, 1) {
		assert.EqualValues(t, 3, entries[0].ContextMap()["team_id"])
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		target string
		status int
	}{
		{target: "/items/12", status: http.StatusOK},
		{target: "/items/0", status: http.StatusBadRequest},
		{target: "/items/-4", status: http.StatusBadRequest},
		{target: "/items/abc", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := perform(func(c *gin.Context) {
				id, ok := ParseID(c, "id")
				if !ok {
					return
				}
				c.JSON(http.StatusOK, gin.H{"id": id})
			}, "/items/:id", tt.target)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestQueryInt(t *testing.T) {
	handler := func(c *gin.Context) {
		v, ok := QueryInt(c, "weeks", 12)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"weeks": v})
	}

	w := perform(handler, "/m", "/m")
	assert.JSONEq(t, `{"weeks":12}`, w.Body.String())

	w = perform(handler, "/m", "/m?weeks=4")
	assert.JSONEq(t, `{"weeks":4}`, w.Body.String())

	w = perform(handler, "/m", "/m?weeks=four")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

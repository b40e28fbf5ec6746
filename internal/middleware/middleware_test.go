package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/items/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.GET("/fail", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		path  string
		level zapcore.Level
	}{
		{path: "/ok", level: zapcore.InfoLevel},
		{path: "/items/7", level: zapcore.WarnLevel},
		{path: "/fail", level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			r := newRouter(RequestID(), Logger(zap.New(core).Sugar()))

			serve(r, httptest.NewRequest(http.MethodGet, tt.path+"?q=1", nil))

			entries := logs.FilterMessage("HTTP request").All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.level, entries[0].Level)
				fields := entries[0].ContextMap()
				assert.Equal(t, "q=1", fields["query"])
				assert.NotEmpty(t, fields["request_id"])
			}
		})
	}
}

func TestLogger_RecordsRouteTemplate(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newRouter(Logger(zap.New(core).Sugar()))

	serve(r, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/items/:id", fields["route"])
	assert.Equal(t, "/items/42", fields["path"])
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := newRouter(Recovery(zap.New(core).Sugar()))

	var w *httptest.ResponseRecorder
	assert.NotPanics(t, func() {
		w = serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID())

	t.Run("generated", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := serve(r, req)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		want   int
	}{
		{name: "valid token", secret: "s3cret", header: "Bearer s3cret", want: http.StatusOK},
		{name: "missing header", secret: "s3cret", header: "", want: http.StatusUnauthorized},
		{name: "wrong token", secret: "s3cret", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "wrong scheme", secret: "s3cret", header: "Basic s3cret", want: http.StatusUnauthorized},
		{name: "token prefix only", secret: "s3cret", header: "Bearer s3cre", want: http.StatusUnauthorized},
		{name: "unset secret rejects everything", secret: "", header: "Bearer ", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(BearerAuth(tt.secret, zaptest.NewLogger(t).Sugar()))
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := serve(r, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":{"code":"UNAUTHORIZED","message":"Unauthorized"}}`, w.Body.String())
			}
		})
	}
}

// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/database/database"
)

const checkTimeout = 5 * time.Second

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	// OpenConnections is the pool size at the time of the check.
	OpenConnections int `json:"open_connections,omitempty"`
}

// RegisterRoutes registers GET /health.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	r.GET("/health", New(db, logger).Check)
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{
			Status:   "unhealthy",
			Database: "unreachable",
		})
		return
	}

	resp := Response{Status: "ok", Database: "ok"}
	if stats, err := database.GetStats(h.db); err == nil {
		resp.OpenConnections = stats.OpenConnections
	}
	c.JSON(http.StatusOK, resp)
}

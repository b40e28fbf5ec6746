// Package router provides code metrics routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/codemetrics/handler"
	"github.com/festy23/palantir/internal/codemetrics/repository"
	"github.com/festy23/palantir/internal/codemetrics/service"
)

// RegisterRoutes registers code metrics routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	metrics := r.Group("/code-metrics")
	metrics.GET("", h.GetReport)
	metrics.GET("/projects/:id", h.GetProjectWeekly)
}

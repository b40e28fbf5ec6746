// Package router provides projected-hours routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/projectedhours/handler"
	"github.com/festy23/palantir/internal/projectedhours/repository"
	"github.com/festy23/palantir/internal/projectedhours/service"
)

// RegisterRoutes registers projected-hours routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	hours := r.Group("/projected-hours")
	hours.PUT("", h.Upsert)
	hours.PUT("/bulk", h.BulkUpsert)
	hours.GET("", h.List)
	hours.DELETE("/:id", h.Delete)
}

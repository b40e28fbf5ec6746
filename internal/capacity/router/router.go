// Package router provides capacity routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/capacity/handler"
	"github.com/festy23/palantir/internal/capacity/repository"
	"github.com/festy23/palantir/internal/capacity/service"
)

// RegisterRoutes registers capacity routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	capacity := r.Group("/capacity")
	capacity.GET("", h.GetCapacity)
	capacity.GET("/summary", h.GetSummary)
}

// Package router provides project module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/project/handler"
	"github.com/festy23/palantir/internal/project/repository"
	"github.com/festy23/palantir/internal/project/service"
)

// RegisterRoutes registers project module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	projects := r.Group("/projects")
	projects.POST("", h.CreateProject)
	projects.GET("", h.ListProjects)
	projects.GET("/:id", h.GetProject)
	projects.PUT("/:id", h.UpdateProject)
	projects.DELETE("/:id", h.DeleteProject)
}

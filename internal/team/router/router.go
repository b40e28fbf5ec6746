// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/team/handler"
	"github.com/festy23/palantir/internal/team/repository"
	"github.com/festy23/palantir/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.POST("", h.CreateTeam)
	teams.GET("", h.ListTeams)
	teams.GET("/:id", h.GetTeam)
	teams.PUT("/:id", h.RenameTeam)
	teams.DELETE("/:id", h.DeleteTeam)
}

// Package router provides person module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/person/handler"
	"github.com/festy23/palantir/internal/person/repository"
	"github.com/festy23/palantir/internal/person/service"
)

// RegisterRoutes registers person module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	people := r.Group("/people")
	people.POST("", h.CreatePerson)
	people.GET("", h.ListPeople)
	people.GET("/:id", h.GetPerson)
	people.PUT("/:id", h.UpdatePerson)
	people.PATCH("/:id/team", h.AssignTeam)
	people.DELETE("/:id", h.DeletePerson)
}

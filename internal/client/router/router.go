// Package router provides client module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/client/handler"
	"github.com/festy23/palantir/internal/client/repository"
	"github.com/festy23/palantir/internal/client/service"
)

// RegisterRoutes registers client module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/clients", h.CreateClient)
	r.GET("/clients", h.ListClients)
	r.DELETE("/clients/:id", h.DeleteClient)
}

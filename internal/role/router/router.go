// Package router provides role module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/role/handler"
	"github.com/festy23/palantir/internal/role/repository"
	"github.com/festy23/palantir/internal/role/service"
)

// RegisterRoutes registers role module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	h := handler.New(service.New(repository.New(db, logger), logger), logger)

	roles := r.Group("/roles")
	roles.POST("", h.CreateRole)
	roles.GET("", h.ListRoles)
	roles.DELETE("/:id", h.DeleteRole)
}

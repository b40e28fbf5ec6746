// Package router provides report routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/reports/handler"
	"github.com/festy23/palantir/internal/reports/repository"
	"github.com/festy23/palantir/internal/reports/service"
)

// RegisterRoutes registers report routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/reports/people", h.GetPeopleReport)
}

// Package router provides statistics ingestion routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/palantir/internal/config"
	"github.com/festy23/palantir/internal/githubstats/handler"
	"github.com/festy23/palantir/internal/githubstats/provider"
	"github.com/festy23/palantir/internal/githubstats/repository"
	"github.com/festy23/palantir/internal/githubstats/service"
	"github.com/festy23/palantir/internal/middleware"
)

// NewService wires the ingestion service from configuration.
func NewService(db *gorm.DB, cfg *config.Config, logger *zap.SugaredLogger) (service.Service, error) {
	loc, err := cfg.Ingestion.Location()
	if err != nil {
		return nil, err
	}
	repo := repository.New(db, logger)
	client := provider.NewClient(cfg.GitHub, logger)
	return service.New(repo, client, loc, logger), nil
}

// RegisterRoutes registers statistics routes. The scheduled trigger is
// guarded by the cron secret.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.SugaredLogger) error {
	svc, err := NewService(db, cfg, logger)
	if err != nil {
		return err
	}
	h := handler.New(svc, logger)

	r.GET("/api/cron/github-stats", middleware.BearerAuth(cfg.Ingestion.CronSecret, logger), h.CollectAll)

	projects := r.Group("/projects/:id/github-stats")
	projects.GET("", h.GetProjectStatistics)
	projects.POST("/process", h.ProcessProject)
	return nil
}

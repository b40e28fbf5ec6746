// Package handler provides HTTP handlers for statistics ingestion.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	"github.com/festy23/palantir/internal/githubstats/model"
	"github.com/festy23/palantir/internal/githubstats/service"
)

// CronResponse is the envelope of the scheduled collection endpoint.
type CronResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Collected int    `json:"collected"`
}

// ProcessResponse is the envelope of an on-demand project run.
type ProcessResponse struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message"`
	Statistics []model.WeeklyStatistic `json:"statistics"`
}

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CollectAll handles GET /api/cron/github-stats request.
// The run continues if the caller disconnects.
// @Summary Collect weekly statistics of every project
// @Tags GitHubStats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CronResponse
// @Failure 401 {object} apierror.ErrorResponse "Missing or wrong token"
// @Failure 500 {object} CronResponse
// @Router /api/cron/github-stats [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CollectAll(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())

	collected, err := h.service.ProcessAllProjects(ctx)
	if err != nil {
		h.logger.Errorw("Scheduled statistics collection failed", "error", err)
		c.JSON(http.StatusInternalServerError, CronResponse{
			Success: false,
			Message: "Failed to process GitHub statistics",
		})
		return
	}

	c.JSON(http.StatusOK, CronResponse{
		Success:   true,
		Message:   "GitHub statistics processed successfully",
		Collected: collected,
	})
}

// ProcessProject handles POST /projects/:id/github-stats/process request.
// @Summary Collect weekly statistics of one project
// @Tags GitHubStats
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} ProcessResponse
// @Failure 400 {object} apierror.ErrorResponse "Project has no valid repository"
// @Failure 404 {object} apierror.ErrorResponse "Project not found"
// @Router /projects/{id}/github-stats/process [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ProcessProject(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	stats, err := h.service.ProcessProjectByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "error processing project statistics", "project_id", id)
		return
	}

	c.JSON(http.StatusOK, ProcessResponse{
		Success:    true,
		Message:    fmt.Sprintf("Processed %d new statistics", len(stats)),
		Statistics: stats,
	})
}

// GetProjectStatistics handles GET /projects/:id/github-stats request.
func (h *Handler) GetProjectStatistics(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	stats, err := h.service.GetProjectStatistics(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "error getting project statistics", "project_id", id)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) writeError(c *gin.Context, err error, msg string, keysAndValues ...interface{}) {
	switch {
	case errors.Is(err, model.ErrProjectNotFound):
		apierror.NotFound(c, "project not found")
	case errors.Is(err, model.ErrNoRepository):
		apierror.BadRequest(c, "project has no repository")
	case errors.Is(err, model.ErrInvalidRepositoryReference):
		apierror.BadRequest(c, "project repository is not a valid GitHub reference")
	default:
		apierror.Internal(c, h.logger, msg, err, keysAndValues...)
	}
}

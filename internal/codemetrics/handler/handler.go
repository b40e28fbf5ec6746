// Package handler provides HTTP handlers for code metrics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	metricsModel "github.com/festy23/palantir/internal/codemetrics/model"
	"github.com/festy23/palantir/internal/codemetrics/service"
)

// Handler handles HTTP requests for code metrics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new code metrics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetReport handles GET /code-metrics request.
// @Summary Weekly, per-project and total code metrics
// @Tags CodeMetrics
// @Produce json
// @Param weeks query int false "Weekly window, default 12, max 104"
// @Success 200 {object} metricsModel.Report
// @Failure 400 {object} apierror.ErrorResponse "Invalid weeks"
// @Router /code-metrics [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetReport(c *gin.Context) {
	weeks, ok := apierror.QueryInt(c, "weeks", metricsModel.DefaultWeeks)
	if !ok {
		return
	}

	report, err := h.service.Report(c.Request.Context(), weeks)
	if err != nil {
		h.writeError(c, err, "error building code metrics", "weeks", weeks)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetProjectWeekly handles GET /code-metrics/projects/:id request.
// @Summary Weekly code metrics of one project
// @Tags CodeMetrics
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} metricsModel.ProjectWeek
// @Failure 404 {object} apierror.ErrorResponse "Project not found"
// @Router /code-metrics/projects/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetProjectWeekly(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	weeks, err := h.service.ProjectWeekly(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "error loading project code metrics", "project_id", id)
		return
	}
	c.JSON(http.StatusOK, weeks)
}

func (h *Handler) writeError(c *gin.Context, err error, msg string, keysAndValues ...interface{}) {
	switch {
	case errors.Is(err, metricsModel.ErrInvalidWeeks):
		apierror.BadRequest(c, err.Error())
	case errors.Is(err, metricsModel.ErrProjectNotFound):
		apierror.NotFound(c, "project not found")
	default:
		apierror.Internal(c, h.logger, msg, err, keysAndValues...)
	}
}

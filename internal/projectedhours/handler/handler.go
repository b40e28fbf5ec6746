// Package handler provides HTTP handlers for projected-hours endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	phModel "github.com/festy23/palantir/internal/projectedhours/model"
	"github.com/festy23/palantir/internal/projectedhours/service"
)

// Handler handles HTTP requests for projected-hours endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new projected-hours handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Upsert handles PUT /projected-hours request.
// @Summary Set projected hours of a project for one month
// @Tags ProjectedHours
// @Accept json
// @Produce json
// @Param request body phModel.Entry true "Request"
// @Success 200 {object} phModel.ProjectedHours
// @Failure 400 {object} apierror.ErrorResponse "Invalid entry"
// @Failure 404 {object} apierror.ErrorResponse "Project not found"
// @Router /projected-hours [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Upsert(c *gin.Context) {
	var req phModel.Entry
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	row, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "error saving projected hours")
		return
	}
	c.JSON(http.StatusOK, row)
}

// BulkUpsert handles PUT /projected-hours/bulk request.
// @Summary Set projected hours for many project/month pairs atomically
// @Tags ProjectedHours
// @Accept json
// @Produce json
// @Param request body phModel.BulkRequest true "Request"
// @Success 200 {object} map[string]int
// @Failure 400 {object} apierror.ErrorResponse "Invalid entry"
// @Failure 404 {object} apierror.ErrorResponse "Project not found"
// @Router /projected-hours/bulk [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) BulkUpsert(c *gin.Context) {
	var req phModel.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	written, err := h.service.BulkUpsert(c.Request.Context(), req.Entries)
	if err != nil {
		h.writeError(c, err, "error saving projected hours", "entries", len(req.Entries))
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": written})
}

// List handles GET /projected-hours request. Either project_id or year
// (optionally with month) selects the rows.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("project_id"); raw != "" {
		projectID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			apierror.BadRequest(c, "project_id must be a positive integer")
			return
		}
		rows, err := h.service.ListByProject(ctx, projectID)
		h.respond(c, rows, err)
		return
	}

	if c.Query("year") == "" {
		apierror.BadRequest(c, "project_id or year is required")
		return
	}
	year, ok := apierror.QueryInt(c, "year", 0)
	if !ok {
		return
	}

	if c.Query("month") == "" {
		rows, err := h.service.ListByYear(ctx, year)
		h.respond(c, rows, err)
		return
	}
	month, ok := apierror.QueryInt(c, "month", 0)
	if !ok {
		return
	}
	rows, err := h.service.ListByMonth(ctx, year, month)
	h.respond(c, rows, err)
}

// Delete handles DELETE /projected-hours/:id request.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "error deleting projected hours", "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respond(c *gin.Context, rows []phModel.ProjectedHours, err error) {
	if err != nil {
		h.writeError(c, err, "error listing projected hours")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) writeError(c *gin.Context, err error, msg string, keysAndValues ...interface{}) {
	switch {
	case errors.Is(err, phModel.ErrInvalidProjectedHours):
		apierror.BadRequest(c, err.Error())
	case errors.Is(err, phModel.ErrProjectNotFound):
		apierror.NotFound(c, "project not found")
	case errors.Is(err, phModel.ErrNotFound):
		apierror.NotFound(c, "projected hours not found")
	default:
		apierror.Internal(c, h.logger, msg, err, keysAndValues...)
	}
}

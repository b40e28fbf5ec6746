// Package handler provides HTTP handlers for report endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	reportModel "github.com/festy23/palantir/internal/reports/model"
	"github.com/festy23/palantir/internal/reports/service"
)

// Handler handles HTTP requests for report endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new report handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetPeopleReport handles GET /reports/people request.
// @Summary Distribution of people by role, seniority and team
// @Tags Reports
// @Produce json
// @Param team query string false "Team name"
// @Param role query string false "Role name"
// @Param seniority query string false "Seniority"
// @Success 200 {object} reportModel.TeamStats
// @Router /reports/people [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetPeopleReport(c *gin.Context) {
	var filter reportModel.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		apierror.BadRequest(c, "invalid query parameters")
		return
	}

	stats, err := h.service.GetTeamStats(c.Request.Context(), filter)
	if err != nil {
		apierror.Internal(c, h.logger, "error building people report", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

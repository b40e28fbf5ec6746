// Package handler provides HTTP handlers for project endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	projectModel "github.com/festy23/palantir/internal/project/model"
	"github.com/festy23/palantir/internal/project/service"
)

// Handler handles HTTP requests for project endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new project handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateProject handles POST /projects request.
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body projectModel.ProjectRequest true "Request"
// @Success 201 {object} projectModel.ProjectView
// @Failure 400 {object} apierror.ErrorResponse "Validation failed or unknown client/team"
// @Failure 409 {object} apierror.ErrorResponse "PROJECT_EXISTS"
// @Router /projects [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateProject(c *gin.Context) {
	var req projectModel.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "error creating project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects request.
// @Summary List projects
// @Tags Projects
// @Produce json
// @Param status query string false "Status"
// @Param team_id query int false "Team ID"
// @Success 200 {array} projectModel.ProjectView
// @Router /projects [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListProjects(c *gin.Context) {
	filter := projectModel.ListFilter{Status: c.Query("status")}
	if raw := c.Query("team_id"); raw != "" {
		teamID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || teamID <= 0 {
			apierror.BadRequest(c, "team_id must be a positive integer")
			return
		}
		filter.TeamID = &teamID
	}

	projects, err := h.service.ListProjects(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err, "error listing projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id request.
func (h *Handler) GetProject(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	project, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "error getting project", "project_id", id)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id request.
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	var req projectModel.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "error updating project", "project_id", id)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id request.
// @Summary Delete a project with its statistics and projected hours
// @Tags Projects
// @Param id path int true "Project ID"
// @Success 204
// @Failure 404 {object} apierror.ErrorResponse "Project not found"
// @Router /projects/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "error deleting project", "project_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error, msg string, keysAndValues ...interface{}) {
	switch {
	case errors.Is(err, projectModel.ErrInvalidProject), errors.Is(err, projectModel.ErrInvalidReference):
		apierror.BadRequest(c, err.Error())
	case errors.Is(err, projectModel.ErrProjectNotFound):
		apierror.NotFound(c, "project not found")
	case errors.Is(err, projectModel.ErrProjectExists):
		apierror.Conflict(c, "PROJECT_EXISTS", "project name already exists")
	default:
		apierror.Internal(c, h.logger, msg, err, keysAndValues...)
	}
}

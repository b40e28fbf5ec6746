// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	teamModel "github.com/festy23/palantir/internal/team/model"
	"github.com/festy23/palantir/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams request.
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.CreateTeamRequest true "Request"
// @Success 201 {object} teamModel.Team
// @Failure 400 {object} apierror.ErrorResponse "Invalid name"
// @Failure 409 {object} apierror.ErrorResponse "TEAM_EXISTS"
// @Router /teams [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), req.Name)
	if err != nil {
		h.writeError(c, err, "error creating team")
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /teams request.
// @Summary List teams with member and project counts
// @Tags Teams
// @Produce json
// @Success 200 {array} teamModel.TeamSummary
// @Router /teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		apierror.Internal(c, h.logger, "error listing teams", err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id request.
// @Summary Get a team with its members
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} teamModel.TeamDetails
// @Failure 404 {object} apierror.ErrorResponse "Team not found"
// @Router /teams/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "error getting team", "team_id", id)
		return
	}
	c.JSON(http.StatusOK, team)
}

// RenameTeam handles PUT /teams/:id request.
// @Summary Rename a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param request body teamModel.CreateTeamRequest true "Request"
// @Success 200 {object} teamModel.Team
// @Router /teams/{id} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RenameTeam(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	team, err := h.service.RenameTeam(c.Request.Context(), id, req.Name)
	if err != nil {
		h.writeError(c, err, "error renaming team", "team_id", id)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id request.
// @Summary Delete a team nobody references
// @Tags Teams
// @Param id path int true "Team ID"
// @Success 204
// @Failure 409 {object} apierror.ErrorResponse "TEAM_IN_USE"
// @Router /teams/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteTeam(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "error deleting team", "team_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error, msg string, keysAndValues ...interface{}) {
	switch {
	case errors.Is(err, teamModel.ErrInvalidTeamName):
		apierror.BadRequest(c, "name is required and must be at most 255 characters")
	case errors.Is(err, teamModel.ErrTeamNotFound):
		apierror.NotFound(c, "team not found")
	case errors.Is(err, teamModel.ErrTeamExists):
		apierror.Conflict(c, "TEAM_EXISTS", "team name already exists")
	case errors.Is(err, teamModel.ErrTeamInUse):
		apierror.Conflict(c, "TEAM_IN_USE", "team still has members or projects")
	default:
		apierror.Internal(c, h.logger, msg, err, keysAndValues...)
	}
}

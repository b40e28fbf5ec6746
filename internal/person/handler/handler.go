// Package handler provides HTTP handlers for person endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	personModel "github.com/festy23/palantir/internal/person/model"
	"github.com/festy23/palantir/internal/person/service"
)

// Handler handles HTTP requests for person endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new person handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreatePerson handles POST /people request.
// @Summary Create a person
// @Tags People
// @Accept json
// @Produce json
// @Param request body personModel.PersonRequest true "Request"
// @Success 201 {object} personModel.PersonView
// @Failure 400 {object} apierror.ErrorResponse "Validation failed or unknown team/role"
// @Router /people [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreatePerson(c *gin.Context) {
	var req personModel.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	person, err := h.service.CreatePerson(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "error creating person")
		return
	}
	c.JSON(http.StatusCreated, person)
}

// ListPeople handles GET /people request.
// @Summary List people
// @Tags People
// @Produce json
// @Param team_id query int false "Team ID"
// @Param role_id query int false "Role ID"
// @Param seniority query string false "Seniority"
// @Param unassigned query bool false "Only people without a team"
// @Success 200 {array} personModel.PersonView
// @Router /people [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListPeople(c *gin.Context) {
	var filter personModel.ListFilter

	for param, dst := range map[string]**int64{"team_id": &filter.TeamID, "role_id": &filter.RoleID} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			apierror.BadRequest(c, param+" must be a positive integer")
			return
		}
		*dst = &v
	}

	if raw := c.Query("unassigned"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			apierror.BadRequest(c, "unassigned must be a boolean")
			return
		}
		filter.Unassigned = v
	}
	filter.Seniority = c.Query("seniority")

	people, err := h.service.ListPeople(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err, "error listing people")
		return
	}
	c.JSON(http.StatusOK, people)
}

// GetPerson handles GET /people/:id request.
func (h *Handler) GetPerson(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	person, err := h.service.GetPerson(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "error getting person", "person_id", id)
		return
	}
	c.JSON(http.StatusOK, person)
}

// UpdatePerson handles PUT /people/:id request.
func (h *Handler) UpdatePerson(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	var req personModel.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	person, err := h.service.UpdatePerson(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "error updating person", "person_id", id)
		return
	}
	c.JSON(http.StatusOK, person)
}

// AssignTeam handles PATCH /people/:id/team request.
// @Summary Move a person to another team or to the unassigned pool
// @Tags People
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Param request body personModel.AssignTeamRequest true "Request"
// @Success 200 {object} personModel.PersonView
// @Router /people/{id}/team [patch] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AssignTeam(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	var req personModel.AssignTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	person, err := h.service.AssignTeam(c.Request.Context(), id, req.TeamID)
	if err != nil {
		h.writeError(c, err, "error assigning team", "person_id", id)
		return
	}
	c.JSON(http.StatusOK, person)
}

// DeletePerson handles DELETE /people/:id request.
func (h *Handler) DeletePerson(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePerson(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "error deleting person", "person_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error, msg string, keysAndValues ...interface{}) {
	switch {
	case errors.Is(err, personModel.ErrInvalidPerson):
		apierror.BadRequest(c, err.Error())
	case errors.Is(err, personModel.ErrInvalidReference):
		apierror.BadRequest(c, err.Error())
	case errors.Is(err, personModel.ErrPersonNotFound):
		apierror.NotFound(c, "person not found")
	default:
		apierror.Internal(c, h.logger, msg, err, keysAndValues...)
	}
}

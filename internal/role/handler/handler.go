// Package handler provides HTTP handlers for role endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	roleModel "github.com/festy23/palantir/internal/role/model"
	"github.com/festy23/palantir/internal/role/service"
)

// Handler handles HTTP requests for role endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new role handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateRole handles POST /roles.
func (h *Handler) CreateRole(c *gin.Context) {
	var req roleModel.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	role, err := h.service.CreateRole(c.Request.Context(), req.Name)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, role)
	case errors.Is(err, roleModel.ErrInvalidRoleName):
		apierror.BadRequest(c, "name is required and must be at most 255 characters")
	case errors.Is(err, roleModel.ErrRoleExists):
		apierror.Conflict(c, "ROLE_EXISTS", "role name already exists")
	default:
		apierror.Internal(c, h.logger, "error creating role", err)
	}
}

// ListRoles handles GET /roles.
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		apierror.Internal(c, h.logger, "error listing roles", err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// DeleteRole handles DELETE /roles/:id.
func (h *Handler) DeleteRole(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	err := h.service.DeleteRole(c.Request.Context(), id)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, roleModel.ErrRoleNotFound):
		apierror.NotFound(c, "role not found")
	case errors.Is(err, roleModel.ErrRoleInUse):
		apierror.Conflict(c, "ROLE_IN_USE", "role is assigned to people")
	default:
		apierror.Internal(c, h.logger, "error deleting role", err, "role_id", id)
	}
}

// Package handler provides HTTP handlers for client endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	clientModel "github.com/festy23/palantir/internal/client/model"
	"github.com/festy23/palantir/internal/client/service"
)

// Handler handles HTTP requests for client endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new client handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateClient handles POST /clients request.
// @Summary Create a client
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body clientModel.CreateClientRequest true "Request"
// @Success 201 {object} clientModel.Client
// @Failure 409 {object} apierror.ErrorResponse "CLIENT_EXISTS"
// @Router /clients [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateClient(c *gin.Context) {
	var req clientModel.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BadRequest(c, "invalid request body")
		return
	}

	client, err := h.service.CreateClient(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, clientModel.ErrInvalidClientName) {
			apierror.BadRequest(c, "name is required and must be at most 255 characters")
			return
		}
		if errors.Is(err, clientModel.ErrClientExists) {
			apierror.Conflict(c, "CLIENT_EXISTS", "client name already exists")
			return
		}
		apierror.Internal(c, h.logger, "error creating client", err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ListClients handles GET /clients request.
// @Summary List clients with project counts
// @Tags Clients
// @Produce json
// @Success 200 {array} clientModel.ClientSummary
// @Router /clients [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		apierror.Internal(c, h.logger, "error listing clients", err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// DeleteClient handles DELETE /clients/:id request.
// @Summary Delete a client without projects
// @Tags Clients
// @Param id path int true "Client ID"
// @Success 204
// @Failure 404 {object} apierror.ErrorResponse "Client not found"
// @Failure 409 {object} apierror.ErrorResponse "CLIENT_IN_USE"
// @Router /clients/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := apierror.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, clientModel.ErrClientNotFound) {
			apierror.NotFound(c, "client not found")
			return
		}
		if errors.Is(err, clientModel.ErrClientInUse) {
			apierror.Conflict(c, "CLIENT_IN_USE", "client still has projects")
			return
		}
		apierror.Internal(c, h.logger, "error deleting client", err, "client_id", id)
		return
	}

	c.Status(http.StatusNoContent)
}

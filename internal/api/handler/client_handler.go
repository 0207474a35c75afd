package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/service"
	"github.com/kgex/bigbbe/pkg/response"
)

// ClientHandler exposes client organisations and their projects.
type ClientHandler struct {
	svc    service.ClientService
	logger *zap.Logger
}

// NewClientHandler creates the ClientHandler.
func NewClientHandler(svc service.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, logger: logger}
}

func (h *ClientHandler) writeErr(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrProjectNotFound):
		response.NotFound(c, 10001, err.Error())
	default:
		h.logger.Error(op, zap.Error(err))
		response.InternalError(c)
	}
}

// Create handles POST /clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	client, err := h.svc.CreateClient(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		h.writeErr(c, err, "create client failed")
		return
	}

	response.Created(c, client)
}

// Get handles GET /clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid client id")
		return
	}

	client, err := h.svc.GetClient(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "get client failed")
		return
	}

	response.OK(c, client)
}

// List handles GET /clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.svc.ListClients(c.Request.Context())
	if err != nil {
		h.writeErr(c, err, "list clients failed")
		return
	}
	response.OK(c, clients)
}

// Delete handles DELETE /clients/:id, admin only.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid client id")
		return
	}

	client, err := h.svc.DeleteClient(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "delete client failed")
		return
	}

	response.OK(c, client)
}

// CreateProject handles POST /clients/:id/projects.
func (h *ClientHandler) CreateProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid client id")
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	project, err := h.svc.CreateProject(c.Request.Context(), id, &req)
	if err != nil {
		h.writeErr(c, err, "create project failed")
		return
	}

	response.Created(c, project)
}

// ListProjects handles GET /clients/:id/projects.
func (h *ClientHandler) ListProjects(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid client id")
		return
	}

	projects, err := h.svc.ListProjects(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "list projects failed")
		return
	}

	response.OK(c, projects)
}

// GetProject handles GET /projects/:id.
func (h *ClientHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid project id")
		return
	}

	project, err := h.svc.GetProject(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "get project failed")
		return
	}

	response.OK(c, project)
}

// ListAllProjects handles GET /projects.
func (h *ClientHandler) ListAllProjects(c *gin.Context) {
	projects, err := h.svc.ListAllProjects(c.Request.Context())
	if err != nil {
		h.writeErr(c, err, "list all projects failed")
		return
	}
	response.OK(c, projects)
}

// DeleteProject handles DELETE /projects/:id, admin only.
func (h *ClientHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid project id")
		return
	}

	project, err := h.svc.DeleteProject(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "delete project failed")
		return
	}

	response.OK(c, project)
}

package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/service"
	"github.com/kgex/bigbbe/pkg/response"
)

// InventoryHandler exposes the asset register. All routes are admin only;
// creation takes a multipart form so the photo rides with the fields.
type InventoryHandler struct {
	svc    service.InventoryService
	logger *zap.Logger
}

// NewInventoryHandler creates the InventoryHandler.
func NewInventoryHandler(svc service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, logger: logger}
}

// Create handles POST /inventory with multipart form data.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	// The photo is optional.
	var photo io.Reader
	var photoName string
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			h.logger.Error("open upload failed", zap.Error(err))
			response.InternalError(c)
			return
		}
		defer f.Close()
		photo, photoName = f, fh.Filename
	}

	inv, err := h.svc.Create(c.Request.Context(), currentUserID(c), &req, photo, photoName)
	if err != nil {
		h.logger.Error("create inventory failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Created(c, inv)
}

// Get handles GET /inventory/:id.
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid inventory id")
		return
	}

	inv, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			response.NotFound(c, 10001, err.Error())
			return
		}
		h.logger.Error("get inventory failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, inv)
}

// List handles GET /inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	items, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("list inventory failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, items)
}

// Update handles PATCH /inventory/:id.
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid inventory id")
		return
	}

	var req dto.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	inv, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			response.NotFound(c, 10001, err.Error())
			return
		}
		h.logger.Error("update inventory failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, inv)
}

// Delete handles DELETE /inventory/:id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid inventory id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			response.NotFound(c, 10001, err.Error())
			return
		}
		h.logger.Error("delete inventory failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "inventory deleted"})
}

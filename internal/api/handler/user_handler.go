package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/repository"
	"github.com/kgex/bigbbe/internal/service"
	"github.com/kgex/bigbbe/pkg/response"
)

// UserHandler exposes member accounts, the RFID directory, items and
// grievances.
type UserHandler struct {
	svc    service.UserService
	logger *zap.Logger
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(svc service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

// List handles GET /users/.
func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	users, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, users)
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.svc.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 10001, err.Error())
			return
		}
		h.logger.Error("load profile failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid user id")
		return
	}

	user, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 10001, err.Error())
			return
		}
		h.logger.Error("get user failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// Delete handles DELETE /users/:id, admin only.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid user id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 10001, err.Error())
			return
		}
		h.logger.Error("delete user failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "user deleted"})
}

// UpdateRFID handles PATCH /updaterfid, admin only.
func (h *UserHandler) UpdateRFID(c *gin.Context) {
	var req dto.UpdateRFIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	user, err := h.svc.UpdateRFID(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 10001, err.Error())
		case errors.Is(err, service.ErrRFIDTaken):
			response.BadRequest(c, 10001, err.Error())
		default:
			h.logger.Error("update rfid failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// UpdateDiscord handles PATCH /users/discord for the authenticated caller.
func (h *UserHandler) UpdateDiscord(c *gin.Context) {
	var req dto.UpdateDiscordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	user, err := h.svc.UpdateDiscord(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 10001, err.Error())
		case errors.Is(err, service.ErrDiscordTaken):
			response.BadRequest(c, 10001, err.Error())
		default:
			h.logger.Error("update discord failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// Search handles GET /users/search, admin only.
func (h *UserHandler) Search(c *gin.Context) {
	var req dto.UserSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	users, err := h.svc.Search(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrBadSearchField) {
			response.BadRequest(c, 10001, err.Error())
			return
		}
		h.logger.Error("search users failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, users)
}

// CreateItem handles POST /users/:id/items.
func (h *UserHandler) CreateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid user id")
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	item, err := h.svc.CreateItem(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 10001, err.Error())
			return
		}
		h.logger.Error("create item failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.Created(c, item)
}

// ListItems handles GET /items/.
func (h *UserHandler) ListItems(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	items, err := h.svc.ListItems(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("list items failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, items)
}

// CreateGrievance handles POST /users/:id/grievance.
func (h *UserHandler) CreateGrievance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid user id")
		return
	}

	var req dto.CreateGrievanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	g, err := h.svc.CreateGrievance(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 10001, err.Error())
		case errors.Is(err, service.ErrBadGrievanceType):
			response.BadRequest(c, 10001, err.Error())
		default:
			h.logger.Error("create grievance failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.Created(c, g)
}

// ListGrievances handles GET /users/:id/grievance.
func (h *UserHandler) ListGrievances(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid user id")
		return
	}

	gs, err := h.svc.ListGrievances(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("list grievances failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, gs)
}

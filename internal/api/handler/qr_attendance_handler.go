package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/service"
	"github.com/kgex/bigbbe/pkg/response"
)

// QRAttendanceHandler exposes QR clocking for the authenticated user.
type QRAttendanceHandler struct {
	svc    service.QRAttendanceService
	logger *zap.Logger
}

// NewQRAttendanceHandler creates the QRAttendanceHandler.
func NewQRAttendanceHandler(svc service.QRAttendanceService, logger *zap.Logger) *QRAttendanceHandler {
	return &QRAttendanceHandler{svc: svc, logger: logger}
}

// Post handles POST /qr_attendance.
func (h *QRAttendanceHandler) Post(c *gin.Context) {
	var req dto.QRAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	msg, err := h.svc.Post(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrNoOpenQRSession) {
			response.BadRequest(c, 10001, err.Error())
			return
		}
		h.logger.Error("qr attendance failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": msg})
}

// ListAll handles GET /qr_attendance.
func (h *QRAttendanceHandler) ListAll(c *gin.Context) {
	atts, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list qr attendance failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, atts)
}

// ListMine handles GET /qr_attendance/user.
func (h *QRAttendanceHandler) ListMine(c *gin.Context) {
	atts, err := h.svc.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.Error("list own qr attendance failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, atts)
}

// DeleteAll handles DELETE /qr_attendance, admin only.
func (h *QRAttendanceHandler) DeleteAll(c *gin.Context) {
	if err := h.svc.DeleteAll(c.Request.Context()); err != nil {
		h.logger.Error("reset qr attendance failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "qr attendance cleared"})
}

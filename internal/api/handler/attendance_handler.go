package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/service"
	"github.com/kgex/bigbbe/pkg/response"
)

// AttendanceHandler exposes the RFID attendance endpoints. Clock-in and
// clock-out are called by the reader device, the queries by the frontend.
type AttendanceHandler struct {
	svc    service.AttendanceService
	logger *zap.Logger
}

// NewAttendanceHandler creates the AttendanceHandler.
func NewAttendanceHandler(svc service.AttendanceService, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, logger: logger}
}

// ClockIn handles POST /attendance_in.
func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	var req dto.ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	resp, err := h.svc.ClockIn(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRFIDNotFound):
			response.NotFound(c, 10001, err.Error())
		case errors.Is(err, service.ErrInactiveAccount),
			errors.Is(err, service.ErrSessionAlreadyOpen):
			response.BadRequest(c, 10001, err.Error())
		default:
			h.logger.Error("clock in failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.Created(c, resp)
}

// ClockOut handles PATCH /attendance_out.
func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	var req dto.ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	entry, err := h.svc.ClockOut(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			response.NotFound(c, 10001, err.Error())
			return
		}
		h.logger.Error("clock out failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, entry)
}

// ListAll handles GET /attendance.
func (h *AttendanceHandler) ListAll(c *gin.Context) {
	entries, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list attendance failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, entries)
}

// Today handles GET /get_today_attendance for the authenticated caller.
func (h *AttendanceHandler) Today(c *gin.Context) {
	entries, err := h.svc.Today(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.Error("today attendance failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, entries)
}

// CurrentMonth handles GET /get_previous_month_attendance. The path name is
// historical; it has always answered with the current calendar month.
func (h *AttendanceHandler) CurrentMonth(c *gin.Context) {
	entries, err := h.svc.CurrentMonth(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.Error("month attendance failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, entries)
}

// Export handles GET /attendance/export, admin only. Streams an xlsx file.
func (h *AttendanceHandler) Export(c *gin.Context) {
	buf, filename, err := h.svc.ExportAll(c.Request.Context())
	if err != nil {
		h.logger.Error("export attendance failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

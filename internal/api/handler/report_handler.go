package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/service"
	"github.com/kgex/bigbbe/pkg/response"
)

// ReportHandler exposes the work-log endpoints, including the Discord bot
// paths which address users by handle instead of token.
type ReportHandler struct {
	svc    service.ReportService
	logger *zap.Logger
}

// NewReportHandler creates the ReportHandler.
func NewReportHandler(svc service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, logger: logger}
}

func (h *ReportHandler) writeErr(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrReportNotFound),
		errors.Is(err, service.ErrDiscordNotFound):
		response.NotFound(c, 10001, err.Error())
	case errors.Is(err, service.ErrBadTaskType), errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, 10001, err.Error())
	case errors.Is(err, service.ErrNoPermission):
		response.Forbidden(c, 10003, err.Error())
	default:
		h.logger.Error(op, zap.Error(err))
		response.InternalError(c)
	}
}

// Create handles POST /users/:id/reports.
func (h *ReportHandler) Create(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid user id")
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	report, err := h.svc.Create(c.Request.Context(), id, &req)
	if err != nil {
		h.writeErr(c, err, "create report failed")
		return
	}

	response.Created(c, report)
}

// Get handles GET /reports/:id.
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid report id")
		return
	}

	report, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "get report failed")
		return
	}

	response.OK(c, report)
}

// Update handles PATCH /reports/:id. Owner or admin only.
func (h *ReportHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid report id")
		return
	}

	var req dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	report, err := h.svc.Update(c.Request.Context(), id, &req, currentUserID(c), currentRole(c))
	if err != nil {
		h.writeErr(c, err, "update report failed")
		return
	}

	response.OK(c, report)
}

// ListByUser handles GET /users/:id/reports.
func (h *ReportHandler) ListByUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid user id")
		return
	}

	reports, err := h.svc.ListByOwner(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "list reports failed")
		return
	}

	response.OK(c, reports)
}

// ListByUserAndDate handles GET /users/:id/reports/date?date=YYYY-MM-DD.
func (h *ReportHandler) ListByUserAndDate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, 10001, "invalid user id")
		return
	}

	var req dto.ReportsByDateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	reports, err := h.svc.ListByOwnerAndDate(c.Request.Context(), id, req.Date)
	if err != nil {
		h.writeErr(c, err, "list reports by date failed")
		return
	}

	response.OK(c, reports)
}

// ListAll handles GET /reports, admin only.
func (h *ReportHandler) ListAll(c *gin.Context) {
	reports, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		h.writeErr(c, err, "list all reports failed")
		return
	}
	response.OK(c, reports)
}

// ListByDiscord handles GET /discord/:username/reports.
func (h *ReportHandler) ListByDiscord(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.BadRequest(c, 10001, "missing discord username")
		return
	}

	reports, err := h.svc.ListByDiscord(c.Request.Context(), username)
	if err != nil {
		h.writeErr(c, err, "list reports by discord failed")
		return
	}

	response.OK(c, reports)
}

// CreateByDiscord handles POST /discord/:username/reports.
func (h *ReportHandler) CreateByDiscord(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.BadRequest(c, 10001, "missing discord username")
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, err.Error())
		return
	}

	report, err := h.svc.CreateByDiscord(c.Request.Context(), username, &req)
	if err != nil {
		h.writeErr(c, err, "create report by discord failed")
		return
	}

	response.Created(c, report)
}

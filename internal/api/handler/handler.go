package handler

import (
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/internal/service"
)

// Handler aggregates the endpoint handlers for router wiring.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Attendance   *AttendanceHandler
	QRAttendance *QRAttendanceHandler
	Report       *ReportHandler
	Client       *ClientHandler
	Inventory    *InventoryHandler
}

// NewHandler wires the handlers onto the service layer.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, logger),
		User:         NewUserHandler(svc.User, logger),
		Attendance:   NewAttendanceHandler(svc.Attendance, logger),
		QRAttendance: NewQRAttendanceHandler(svc.QRAttendance, logger),
		Report:       NewReportHandler(svc.Report, logger),
		Client:       NewClientHandler(svc.Client, logger),
		Inventory:    NewInventoryHandler(svc.Inventory, logger),
	}
}

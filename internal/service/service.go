package service

import (
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/config"
	"github.com/kgex/bigbbe/internal/repository"
	"github.com/kgex/bigbbe/pkg/filestore"
	"github.com/kgex/bigbbe/pkg/jwt"
	"github.com/kgex/bigbbe/pkg/mailer"
	"github.com/kgex/bigbbe/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Auth         AuthService
	User         UserService
	Attendance   AttendanceService
	QRAttendance QRAttendanceService
	Report       ReportService
	Client       ClientService
	Inventory    InventoryService
}

// NewService wires the service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	mail mailer.Sender,
	rdb *redis.Client,
	files *filestore.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, mail, rdb, logger),
		User:         NewUserService(repo, logger),
		Attendance:   NewAttendanceService(repo, logger),
		QRAttendance: NewQRAttendanceService(repo, logger),
		Report:       NewReportService(repo, logger),
		Client:       NewClientService(repo, logger),
		Inventory:    NewInventoryService(repo, files, logger),
	}
}

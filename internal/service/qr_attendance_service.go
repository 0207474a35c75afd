package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/model"
	"github.com/kgex/bigbbe/internal/repository"
)

// ErrNoOpenQRSession rejects a QR clock-out with nothing to close.
var ErrNoOpenQRSession = errors.New("no open qr attendance session")

// QRAttendanceService drives QR-based clocking keyed by the authenticated
// user rather than an RFID key.
type QRAttendanceService interface {
	Post(ctx context.Context, userID uint, req *dto.QRAttendanceRequest) (string, error)
	ListAll(ctx context.Context) ([]model.QRAttendance, error)
	ListMine(ctx context.Context, userID uint) ([]model.QRAttendance, error)
	DeleteAll(ctx context.Context) error
}

type qrAttendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewQRAttendanceService creates the QRAttendanceService.
func NewQRAttendanceService(repo *repository.Repository, logger *zap.Logger) QRAttendanceService {
	return &qrAttendanceService{repo: repo, logger: logger, now: time.Now}
}

// Post clocks the user in or out depending on req.Type. Clock-out closes
// the most recent open session; older stragglers stay untouched.
func (s *qrAttendanceService) Post(ctx context.Context, userID uint, req *dto.QRAttendanceRequest) (string, error) {
	if req.Type == "in" {
		inTime := s.now()
		if req.InTime != nil {
			inTime = *req.InTime
		}
		att := &model.QRAttendance{UserID: userID, InTime: inTime}
		if err := s.repo.QRAttendance.Create(ctx, att); err != nil {
			s.logger.Error("qr clock-in failed", zap.Uint("user_id", userID), zap.Error(err))
			return "", err
		}
		return "Student has been successfully clocked in", nil
	}

	att, err := s.repo.QRAttendance.GetLatestOpenByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNoOpenQRSession
		}
		return "", err
	}

	outTime := s.now()
	if req.OutTime != nil {
		outTime = *req.OutTime
	}
	att.OutTime = &outTime
	if err := s.repo.QRAttendance.Update(ctx, att); err != nil {
		s.logger.Error("qr clock-out failed", zap.Uint("user_id", userID), zap.Error(err))
		return "", err
	}
	return "Student has been successfully clocked out", nil
}

func (s *qrAttendanceService) ListAll(ctx context.Context) ([]model.QRAttendance, error) {
	return s.repo.QRAttendance.ListAll(ctx)
}

func (s *qrAttendanceService) ListMine(ctx context.Context, userID uint) ([]model.QRAttendance, error) {
	return s.repo.QRAttendance.ListByUserID(ctx, userID)
}

func (s *qrAttendanceService) DeleteAll(ctx context.Context) error {
	if err := s.repo.QRAttendance.DeleteAll(ctx); err != nil {
		s.logger.Error("qr attendance reset failed", zap.Error(err))
		return err
	}
	return nil
}

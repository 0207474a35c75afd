package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/model"
	"github.com/kgex/bigbbe/internal/repository"
)

// ── attendance module business errors ──

var (
	ErrRFIDNotFound       = errors.New("user with RFID key not found")
	ErrInactiveAccount    = errors.New("account is not verified")
	ErrSessionAlreadyOpen = errors.New("an open attendance session already exists")
	ErrEntryNotFound      = errors.New("attendance entry not found")
)

// AttendanceService drives the RFID clock-in/clock-out lifecycle.
type AttendanceService interface {
	ClockIn(ctx context.Context, req *dto.ClockInRequest) (*dto.ClockInResponse, error)
	ClockOut(ctx context.Context, req *dto.ClockOutRequest) (*dto.AttendanceEntry, error)
	ListAll(ctx context.Context) ([]dto.AttendanceWithName, error)
	Today(ctx context.Context, userID uint) ([]dto.AttendanceWithName, error)
	CurrentMonth(ctx context.Context, userID uint) ([]dto.AttendanceWithName, error)
	ExportAll(ctx context.Context) (*bytes.Buffer, string, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewAttendanceService creates the AttendanceService.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger, now: time.Now}
}

func toAttendanceDTO(e *model.AttendanceEntry) dto.AttendanceEntry {
	return dto.AttendanceEntry{
		ID:          e.ID,
		UserID:      e.UserID,
		InTime:      e.InTime,
		OutTime:     e.OutTime,
		UpdatedTime: e.UpdatedTime,
	}
}

func toAttendanceWithNames(entries []model.AttendanceEntry) []dto.AttendanceWithName {
	result := make([]dto.AttendanceWithName, 0, len(entries))
	for i := range entries {
		name := ""
		if entries[i].User != nil {
			name = entries[i].User.FullName
		}
		result = append(result, dto.AttendanceWithName{
			Name:       name,
			Attendance: toAttendanceDTO(&entries[i]),
		})
	}
	return result
}

// ────────────────────── ClockIn ──────────────────────

func (s *attendanceService) ClockIn(ctx context.Context, req *dto.ClockInRequest) (*dto.ClockInResponse, error) {
	user, err := s.repo.User.GetByRFIDKey(ctx, req.RFIDKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRFIDNotFound
		}
		s.logger.Error("lookup rfid failed", zap.Error(err))
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	// At most one open session per account.
	if _, err := s.repo.Attendance.GetOpenByUserID(ctx, user.ID); err == nil {
		return nil, ErrSessionAlreadyOpen
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &model.AttendanceEntry{
		UserID:      user.ID,
		InTime:      req.InTime,
		UpdatedTime: s.now(),
	}
	if err := s.repo.Attendance.Create(ctx, entry); err != nil {
		s.logger.Error("create attendance entry failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	return &dto.ClockInResponse{ID: entry.ID}, nil
}

// ────────────────────── ClockOut ──────────────────────

func (s *attendanceService) ClockOut(ctx context.Context, req *dto.ClockOutRequest) (*dto.AttendanceEntry, error) {
	entry, err := s.repo.Attendance.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	out := req.OutTime
	entry.OutTime = &out
	entry.UpdatedTime = s.now()
	if err := s.repo.Attendance.Update(ctx, entry); err != nil {
		s.logger.Error("close attendance entry failed", zap.Uint("id", entry.ID), zap.Error(err))
		return nil, err
	}

	resp := toAttendanceDTO(entry)
	return &resp, nil
}

// ────────────────────── queries ──────────────────────

func (s *attendanceService) ListAll(ctx context.Context) ([]dto.AttendanceWithName, error) {
	entries, err := s.repo.Attendance.ListAll(ctx)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}
	return toAttendanceWithNames(entries), nil
}

// Today returns entries whose in-time falls on the current calendar day,
// open sessions included.
func (s *attendanceService) Today(ctx context.Context, userID uint) ([]dto.AttendanceWithName, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	entries, err := s.repo.Attendance.ListByUserBetween(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return toAttendanceWithNames(entries), nil
}

// CurrentMonth returns entries whose in-time falls in the current calendar
// month, open sessions included.
func (s *attendanceService) CurrentMonth(ctx context.Context, userID uint) ([]dto.AttendanceWithName, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	entries, err := s.repo.Attendance.ListByUserBetween(ctx, userID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return toAttendanceWithNames(entries), nil
}

// ────────────────────── ExportAll ──────────────────────

// ExportAll renders every attendance entry into an xlsx workbook.
func (s *attendanceService) ExportAll(ctx context.Context) (*bytes.Buffer, string, error) {
	entries, err := s.repo.Attendance.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Email", "In Time", "Out Time", "Updated"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("write header: %w", err)
		}
	}

	const timeLayout = "2006-01-02 15:04:05"
	for row, e := range entries {
		name, email := "", ""
		if e.User != nil {
			name, email = e.User.FullName, e.User.Email
		}
		out := ""
		if e.OutTime != nil {
			out = e.OutTime.Format(timeLayout)
		}
		values := []interface{}{
			e.ID, name, email,
			e.InTime.Format(timeLayout), out,
			e.UpdatedTime.Format(timeLayout),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("render workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

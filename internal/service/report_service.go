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

// ── report module business errors ──

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrBadTaskType     = errors.New("task type must be learning, project or others")
	ErrBadDate         = errors.New("date must be YYYY-MM-DD")
	ErrNoPermission    = errors.New("not authorized")
	ErrDiscordNotFound = errors.New("no user with that discord username")
)

// ReportService drives task/work-log entries, including the Discord paths.
type ReportService interface {
	Create(ctx context.Context, ownerID uint, req *dto.CreateReportRequest) (*model.Report, error)
	GetByID(ctx context.Context, id uint) (*model.Report, error)
	Update(ctx context.Context, reportID uint, req *dto.UpdateReportRequest, callerID uint, callerRole string) (*model.Report, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Report, error)
	ListByOwnerAndDate(ctx context.Context, ownerID uint, date string) ([]model.Report, error)
	ListAll(ctx context.Context) ([]model.Report, error)
	ListByDiscord(ctx context.Context, discordUsername string) ([]model.Report, error)
	CreateByDiscord(ctx context.Context, discordUsername string, req *dto.CreateReportRequest) (*model.Report, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService creates the ReportService.
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

func (s *reportService) buildReport(ownerID uint, req *dto.CreateReportRequest) (*model.Report, error) {
	if !model.ValidTaskType(req.TaskType) {
		return nil, ErrBadTaskType
	}
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityNone
	}
	status := req.Status
	if status == "" {
		status = model.StatusNone
	}
	return &model.Report{
		TaskType:    req.TaskType,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		StopTime:    req.StopTime,
		OwnerID:     ownerID,
		AssignedBy:  req.AssignedBy,
		Priority:    priority,
		Status:      status,
	}, nil
}

func (s *reportService) Create(ctx context.Context, ownerID uint, req *dto.CreateReportRequest) (*model.Report, error) {
	if _, err := s.repo.User.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	report, err := s.buildReport(ownerID, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Report.Create(ctx, report); err != nil {
		s.logger.Error("create report failed", zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (s *reportService) GetByID(ctx context.Context, id uint) (*model.Report, error) {
	report, err := s.repo.Report.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return report, nil
}

// Update applies a partial update. Only the owner or an admin may touch a
// report.
func (s *reportService) Update(ctx context.Context, reportID uint, req *dto.UpdateReportRequest, callerID uint, callerRole string) (*model.Report, error) {
	report, err := s.repo.Report.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	if callerRole != model.RoleAdmin && report.OwnerID != callerID {
		return nil, ErrNoPermission
	}

	if req.TaskType != nil {
		if !model.ValidTaskType(*req.TaskType) {
			return nil, ErrBadTaskType
		}
		report.TaskType = *req.TaskType
	}
	if req.Title != nil {
		report.Title = *req.Title
	}
	if req.Description != nil {
		report.Description = *req.Description
	}
	if req.StartTime != nil {
		report.StartTime = *req.StartTime
	}
	if req.StopTime != nil {
		report.StopTime = *req.StopTime
	}
	if req.AssignedBy != nil {
		report.AssignedBy = *req.AssignedBy
	}
	if req.Priority != nil {
		report.Priority = *req.Priority
	}
	if req.Status != nil {
		report.Status = *req.Status
	}

	if err := s.repo.Report.Update(ctx, report); err != nil {
		s.logger.Error("update report failed", zap.Uint("id", reportID), zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (s *reportService) ListByOwner(ctx context.Context, ownerID uint) ([]model.Report, error) {
	return s.repo.Report.ListByOwner(ctx, ownerID)
}

func (s *reportService) ListByOwnerAndDate(ctx context.Context, ownerID uint, date string) ([]model.Report, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrBadDate
	}
	return s.repo.Report.ListByOwnerBetween(ctx, ownerID, day, day.AddDate(0, 0, 1))
}

func (s *reportService) ListAll(ctx context.Context) ([]model.Report, error) {
	return s.repo.Report.ListAll(ctx)
}

func (s *reportService) ListByDiscord(ctx context.Context, discordUsername string) ([]model.Report, error) {
	user, err := s.repo.User.GetByDiscordUsername(ctx, discordUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscordNotFound
		}
		return nil, err
	}
	return s.repo.Report.ListByOwner(ctx, user.ID)
}

func (s *reportService) CreateByDiscord(ctx context.Context, discordUsername string, req *dto.CreateReportRequest) (*model.Report, error) {
	user, err := s.repo.User.GetByDiscordUsername(ctx, discordUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscordNotFound
		}
		return nil, err
	}

	report, err := s.buildReport(user.ID, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Report.Create(ctx, report); err != nil {
		s.logger.Error("create report by discord failed", zap.String("discord", discordUsername), zap.Error(err))
		return nil, err
	}
	return report, nil
}

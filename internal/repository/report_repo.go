package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
)

// ReportRepository is the reports data-access interface.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	GetByID(ctx context.Context, id uint) (*model.Report, error)
	Update(ctx context.Context, report *model.Report) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Report, error)
	ListByOwnerBetween(ctx context.Context, ownerID uint, from, to time.Time) ([]model.Report, error)
	ListAll(ctx context.Context) ([]model.Report, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo creates the GORM-backed ReportRepository.
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepo) GetByID(ctx context.Context, id uint) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) Update(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *reportRepo) ListByOwner(ctx context.Context, ownerID uint) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("start_time DESC").
		Find(&reports).Error
	return reports, err
}

func (r *reportRepo) ListByOwnerBetween(ctx context.Context, ownerID uint, from, to time.Time) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND start_time >= ? AND start_time < ?", ownerID, from, to).
		Order("start_time").
		Find(&reports).Error
	return reports, err
}

func (r *reportRepo) ListAll(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).Order("start_time DESC").Find(&reports).Error
	return reports, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
)

// QRAttendanceRepository is the QR attendance data-access interface.
type QRAttendanceRepository interface {
	Create(ctx context.Context, att *model.QRAttendance) error
	GetLatestOpenByUserID(ctx context.Context, userID uint) (*model.QRAttendance, error)
	Update(ctx context.Context, att *model.QRAttendance) error
	ListAll(ctx context.Context) ([]model.QRAttendance, error)
	ListByUserID(ctx context.Context, userID uint) ([]model.QRAttendance, error)
	DeleteAll(ctx context.Context) error
}

type qrAttendanceRepo struct {
	db *gorm.DB
}

// NewQRAttendanceRepo creates the GORM-backed QRAttendanceRepository.
func NewQRAttendanceRepo(db *gorm.DB) QRAttendanceRepository {
	return &qrAttendanceRepo{db: db}
}

func (r *qrAttendanceRepo) Create(ctx context.Context, att *model.QRAttendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *qrAttendanceRepo) GetLatestOpenByUserID(ctx context.Context, userID uint) (*model.QRAttendance, error) {
	var att model.QRAttendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND out_time IS NULL", userID).
		Order("in_time DESC").
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *qrAttendanceRepo) Update(ctx context.Context, att *model.QRAttendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *qrAttendanceRepo) ListAll(ctx context.Context) ([]model.QRAttendance, error) {
	var atts []model.QRAttendance
	err := r.db.WithContext(ctx).Order("in_time DESC").Find(&atts).Error
	return atts, err
}

func (r *qrAttendanceRepo) ListByUserID(ctx context.Context, userID uint) ([]model.QRAttendance, error) {
	var atts []model.QRAttendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("in_time DESC").
		Find(&atts).Error
	return atts, err
}

func (r *qrAttendanceRepo) DeleteAll(ctx context.Context) error {
	// Administrative reset wipes the whole table.
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.QRAttendance{}).Error
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
)

// AttendanceRepository is the RFID attendance data-access interface.
// Time-window logic stays in the service; this layer just takes ranges.
type AttendanceRepository interface {
	Create(ctx context.Context, entry *model.AttendanceEntry) error
	GetByID(ctx context.Context, id uint) (*model.AttendanceEntry, error)
	GetOpenByUserID(ctx context.Context, userID uint) (*model.AttendanceEntry, error)
	Update(ctx context.Context, entry *model.AttendanceEntry) error
	ListAll(ctx context.Context) ([]model.AttendanceEntry, error)
	ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.AttendanceEntry, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the GORM-backed AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, entry *model.AttendanceEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *attendanceRepo) GetByID(ctx context.Context, id uint) (*model.AttendanceEntry, error) {
	var entry model.AttendanceEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *attendanceRepo) GetOpenByUserID(ctx context.Context, userID uint) (*model.AttendanceEntry, error) {
	var entry model.AttendanceEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND out_time IS NULL", userID).
		Order("in_time DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *attendanceRepo) Update(ctx context.Context, entry *model.AttendanceEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *attendanceRepo) ListAll(ctx context.Context) ([]model.AttendanceEntry, error) {
	var entries []model.AttendanceEntry
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("in_time DESC").
		Find(&entries).Error
	return entries, err
}

func (r *attendanceRepo) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.AttendanceEntry, error) {
	var entries []model.AttendanceEntry
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND in_time >= ? AND in_time < ?", userID, from, to).
		Order("in_time").
		Find(&entries).Error
	return entries, err
}

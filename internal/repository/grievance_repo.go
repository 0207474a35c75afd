package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
)

// GrievanceRepository is the grievances data-access interface.
type GrievanceRepository interface {
	Create(ctx context.Context, g *model.Grievance) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Grievance, error)
}

type grievanceRepo struct {
	db *gorm.DB
}

// NewGrievanceRepo creates the GORM-backed GrievanceRepository.
func NewGrievanceRepo(db *gorm.DB) GrievanceRepository {
	return &grievanceRepo{db: db}
}

func (r *grievanceRepo) Create(ctx context.Context, g *model.Grievance) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *grievanceRepo) ListByOwner(ctx context.Context, ownerID uint) ([]model.Grievance, error) {
	var gs []model.Grievance
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&gs).Error
	return gs, err
}

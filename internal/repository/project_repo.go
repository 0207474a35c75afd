package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
)

// ProjectRepository is the projects data-access interface.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	ListByClient(ctx context.Context, clientID uint) ([]model.Project, error)
	ListAll(ctx context.Context) ([]model.Project, error)
	Delete(ctx context.Context, id uint) error
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo creates the GORM-backed ProjectRepository.
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) ListByClient(ctx context.Context, clientID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", clientID).
		Order("id").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) ListAll(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Order("id").Find(&projects).Error
	return projects, err
}

func (r *projectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

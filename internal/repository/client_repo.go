package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
)

// ClientRepository is the clients data-access interface.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	GetByID(ctx context.Context, id uint) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Delete(ctx context.Context, id uint) error
}

type clientRepo struct {
	db *gorm.DB
}

// NewClientRepo creates the GORM-backed ClientRepository.
func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepo) GetByID(ctx context.Context, id uint) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).Order("id").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) Delete(ctx context.Context, id uint) error {
	// Projects under the client go with it via FK cascade.
	return r.db.WithContext(ctx).Delete(&model.Client{}, id).Error
}

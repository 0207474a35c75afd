package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
)

// ItemRepository is the items data-access interface.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	List(ctx context.Context, offset, limit int) ([]model.Item, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepo creates the GORM-backed ItemRepository.
func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) List(ctx context.Context, offset, limit int) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id").
		Find(&items).Error
	return items, err
}

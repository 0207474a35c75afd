package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/model"
)

// InventoryRepository is the inventory data-access interface.
type InventoryRepository interface {
	Create(ctx context.Context, inv *model.Inventory) error
	GetByID(ctx context.Context, id uint) (*model.Inventory, error)
	List(ctx context.Context, offset, limit int) ([]model.Inventory, error)
	Update(ctx context.Context, inv *model.Inventory) error
	Delete(ctx context.Context, id uint) error
}

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepo creates the GORM-backed InventoryRepository.
func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uint) (*model.Inventory, error) {
	var inv model.Inventory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) List(ctx context.Context, offset, limit int) ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepo) Update(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Inventory{}, id).Error
}

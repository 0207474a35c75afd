package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kgex/bigbbe/internal/dto"
	"github.com/kgex/bigbbe/internal/model"
	"github.com/kgex/bigbbe/internal/repository"
	"github.com/kgex/bigbbe/pkg/filestore"
)

// ErrInventoryNotFound rejects operations on unknown asset ids.
var ErrInventoryNotFound = errors.New("inventory record not found")

// InventoryService drives club asset records and their photo uploads.
type InventoryService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateInventoryRequest, photo io.Reader, photoName string) (*model.Inventory, error)
	Get(ctx context.Context, id uint) (*model.Inventory, error)
	List(ctx context.Context, req *dto.ListRequest) ([]model.Inventory, error)
	Update(ctx context.Context, id uint, req *dto.UpdateInventoryRequest) (*model.Inventory, error)
	Delete(ctx context.Context, id uint) error
}

type inventoryService struct {
	repo   *repository.Repository
	files  *filestore.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewInventoryService creates the InventoryService.
func NewInventoryService(repo *repository.Repository, files *filestore.Store, logger *zap.Logger) InventoryService {
	return &inventoryService{repo: repo, files: files, logger: logger, now: time.Now}
}

// Create stores the uploaded photo on disk first, then the row. The stored
// path doubles as the thumbnail until separate thumbnails exist.
func (s *inventoryService) Create(ctx context.Context, userID uint, req *dto.CreateInventoryRequest, photo io.Reader, photoName string) (*model.Inventory, error) {
	var photoPath string
	if photo != nil {
		path, err := s.files.Save(photo, photoName)
		if err != nil {
			s.logger.Error("store inventory photo failed", zap.Error(err))
			return nil, err
		}
		photoPath = path
	}

	now := s.now()
	inv := &model.Inventory{
		UserID:        userID,
		Name:          req.Name,
		Category:      req.Category,
		Qty:           req.Qty,
		Specs:         req.Specs,
		Department:    req.Department,
		College:       req.College,
		Description:   req.Description,
		PurchaseDate:  req.PurchaseDate,
		CreatedAt:     now,
		UpdatedAt:     now,
		ItemCondition: req.ItemCondition,
		PurchasePrice: req.PurchasePrice,
		PhotoURLs:     photoPath,
		ThumbnailURL:  photoPath,
	}
	if err := s.repo.Inventory.Create(ctx, inv); err != nil {
		s.logger.Error("create inventory failed", zap.Error(err))
		if photoPath != "" {
			s.files.Remove(photoPath)
		}
		return nil, err
	}
	return inv, nil
}

func (s *inventoryService) Get(ctx context.Context, id uint) (*model.Inventory, error) {
	inv, err := s.repo.Inventory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *inventoryService) List(ctx context.Context, req *dto.ListRequest) ([]model.Inventory, error) {
	req.Normalize()
	return s.repo.Inventory.List(ctx, req.Skip, req.Limit)
}

// Update applies a partial update; untouched fields keep their stored value.
func (s *inventoryService) Update(ctx context.Context, id uint, req *dto.UpdateInventoryRequest) (*model.Inventory, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		inv.Name = *req.Name
	}
	if req.Category != nil {
		inv.Category = *req.Category
	}
	if req.Qty != nil {
		inv.Qty = *req.Qty
	}
	if req.Specs != nil {
		inv.Specs = *req.Specs
	}
	if req.Department != nil {
		inv.Department = *req.Department
	}
	if req.College != nil {
		inv.College = *req.College
	}
	if req.Description != nil {
		inv.Description = *req.Description
	}
	if req.PurchaseDate != nil {
		inv.PurchaseDate = *req.PurchaseDate
	}
	if req.ItemCondition != nil {
		inv.ItemCondition = *req.ItemCondition
	}
	if req.PurchasePrice != nil {
		inv.PurchasePrice = *req.PurchasePrice
	}
	inv.UpdatedAt = s.now()

	if err := s.repo.Inventory.Update(ctx, inv); err != nil {
		s.logger.Error("update inventory failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return inv, nil
}

// Delete removes the row and the stored photo file. A missing file is not
// an error.
func (s *inventoryService) Delete(ctx context.Context, id uint) error {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Inventory.Delete(ctx, id); err != nil {
		s.logger.Error("delete inventory failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	if inv.PhotoURLs != "" {
		if err := s.files.Remove(inv.PhotoURLs); err != nil {
			s.logger.Warn("remove inventory photo failed", zap.String("path", inv.PhotoURLs), zap.Error(err))
		}
	}
	return nil
}

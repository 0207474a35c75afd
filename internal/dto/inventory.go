package dto

import "time"

// ── inventory module DTOs ──

// CreateInventoryRequest carries the multipart form fields for a new asset;
// the photo file rides alongside as the "file" part.
type CreateInventoryRequest struct {
	Name          string    `form:"name"           binding:"required"`
	Category      string    `form:"category"       binding:"required"`
	Qty           int       `form:"qty"            binding:"required"`
	Specs         string    `form:"specs"`
	Department    string    `form:"department"`
	College       string    `form:"college"`
	Description   string    `form:"description"`
	PurchaseDate  time.Time `form:"purchase_date"  binding:"required" time_format:"2006-01-02"`
	ItemCondition string    `form:"item_condition"`
	PurchasePrice int       `form:"purchase_price"`
}

// UpdateInventoryRequest applies a partial update; nil fields keep their
// stored value. updated_at is always refreshed.
type UpdateInventoryRequest struct {
	Name          *string    `json:"name"`
	Category      *string    `json:"category"`
	Qty           *int       `json:"qty"`
	Specs         *string    `json:"specs"`
	Department    *string    `json:"department"`
	College       *string    `json:"college"`
	Description   *string    `json:"description"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	ItemCondition *string    `json:"item_condition"`
	PurchasePrice *int       `json:"purchase_price"`
}

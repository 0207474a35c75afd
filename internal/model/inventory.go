package model

import "time"

// Inventory is a club asset record — table inventory. PhotoURLs and
// ThumbnailURL hold filesystem paths produced by the media file store.
type Inventory struct {
	ID            uint      `gorm:"primaryKey"        json:"id"`
	UserID        uint      `gorm:"not null"          json:"user_id"`
	Name          string    `gorm:"type:varchar(255)" json:"name"`
	Category      string    `gorm:"type:varchar(100)" json:"category"`
	Qty           int       `json:"qty"`
	Specs         string    `gorm:"type:text"         json:"specs"`
	Department    string    `gorm:"type:varchar(100)" json:"department"`
	College       string    `gorm:"type:varchar(255)" json:"college"`
	Description   string    `gorm:"type:text"         json:"description"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ItemCondition string    `gorm:"type:varchar(50)"  json:"item_condition"`
	PurchasePrice int       `json:"purchase_price"`
	PhotoURLs     string    `gorm:"column:photo_urls;type:varchar(512)"    json:"photo_urls"`
	ThumbnailURL  string    `gorm:"column:thumbnail_url;type:varchar(512)" json:"thumbnail_url"`
}

// TableName pins the legacy table name.
func (Inventory) TableName() string { return "inventory" }

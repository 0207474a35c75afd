package model

// Item is a simple belonging attached to a user — table items.
type Item struct {
	ID          uint   `gorm:"primaryKey"        json:"id"`
	Title       string `gorm:"type:varchar(255)" json:"title"`
	Description string `gorm:"type:text"         json:"description"`
	OwnerID     uint   `gorm:"not null"          json:"owner_id"`
}

// TableName pins the legacy table name.
func (Item) TableName() string { return "items" }

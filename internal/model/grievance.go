package model

// Grievance is a member complaint — table grievances.
type Grievance struct {
	ID            uint   `gorm:"primaryKey"        json:"id"`
	OwnerID       uint   `gorm:"not null"          json:"owner_id"`
	Name          string `gorm:"type:varchar(255)" json:"name"`
	Description   string `gorm:"type:text"         json:"description"`
	ImageURL      string `gorm:"column:image_url;type:varchar(512)" json:"image_url"`
	GrievanceType string `gorm:"type:varchar(20)"  json:"grievance_type"`
}

// TableName pins the legacy table name.
func (Grievance) TableName() string { return "grievances" }

package model

import "time"

// Report is a work-log entry — table reports. Created by a member directly
// or through the Discord integration.
type Report struct {
	ID          uint      `gorm:"primaryKey"          json:"id"`
	TaskType    string    `gorm:"type:varchar(20);index" json:"task_type"`
	Title       string    `gorm:"type:varchar(255)"   json:"title"`
	Description string    `gorm:"type:text"           json:"description"`
	StartTime   time.Time `gorm:"index"               json:"start_time"`
	StopTime    time.Time `json:"stop_time"`
	OwnerID     uint      `gorm:"not null;index"      json:"owner_id"`
	AssignedBy  string    `gorm:"type:varchar(255)"   json:"assigned_by"`
	Priority    string    `gorm:"type:varchar(20)"    json:"priority"`
	Status      string    `gorm:"type:varchar(20)"    json:"status"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// TableName pins the legacy table name.
func (Report) TableName() string { return "reports" }

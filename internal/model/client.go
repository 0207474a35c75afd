package model

import "time"

// Client is an external organisation the club works with — table clients.
type Client struct {
	ID          uint   `gorm:"primaryKey"        json:"id"`
	OwnerID     uint   `gorm:"not null"          json:"owner_id"`
	Name        string `gorm:"type:varchar(255)" json:"name"`
	Description string `gorm:"type:text"         json:"description"`
	POCName     string `gorm:"column:poc_name;type:varchar(255)"  json:"poc_name"`
	POCPhone    string `gorm:"column:poc_phone;type:varchar(20)"  json:"poc_phone"`
	POCEmail    string `gorm:"column:poc_email;type:varchar(255)" json:"poc_email"`
}

// TableName pins the legacy table name.
func (Client) TableName() string { return "clients" }

// Project belongs to a client — table projects. OwnerID references the
// client, not a user; deleting the client cascades here.
type Project struct {
	ID            uint      `gorm:"primaryKey"        json:"id"`
	OwnerID       uint      `gorm:"not null"          json:"owner_id"`
	Name          string    `gorm:"type:varchar(255)" json:"name"`
	Description   string    `gorm:"type:text"         json:"description"`
	StartTime     time.Time `json:"start_time"`
	StopTime      time.Time `json:"stop_time"`
	ProjectStatus string    `gorm:"type:varchar(50)"  json:"project_status"`
	Domain        string    `gorm:"type:varchar(100)" json:"domain"`
}

// TableName pins the legacy table name.
func (Project) TableName() string { return "projects" }

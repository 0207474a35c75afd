package model

import "time"

// AttendanceEntry is one RFID clock session — table attendance_entries.
// A nil OutTime marks an open session; an account holds at most one.
type AttendanceEntry struct {
	ID          uint       `gorm:"primaryKey"          json:"id"`
	UserID      uint       `gorm:"not null;index"      json:"user_id"`
	InTime      time.Time  `gorm:"not null;index"      json:"in_time"`
	OutTime     *time.Time `json:"out_time"`
	UpdatedTime time.Time  `gorm:"not null"            json:"updated_time"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName pins the legacy table name.
func (AttendanceEntry) TableName() string { return "attendance_entries" }

// QRAttendance is one QR clock session keyed by the authenticated user —
// table qr_attendance.
type QRAttendance struct {
	ID      uint       `gorm:"primaryKey"     json:"id"`
	UserID  uint       `gorm:"not null;index" json:"user_id"`
	InTime  time.Time  `gorm:"not null"       json:"in_time"`
	OutTime *time.Time `json:"out_time"`
}

// TableName pins the legacy table name.
func (QRAttendance) TableName() string { return "qr_attendance" }

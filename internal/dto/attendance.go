package dto

import "time"

// ── attendance module DTOs ──

// ClockInRequest opens an RFID attendance session.
type ClockInRequest struct {
	RFIDKey string    `json:"rfid_key" binding:"required"`
	InTime  time.Time `json:"in_time"  binding:"required"`
}

// ClockOutRequest closes an RFID attendance session by record id.
type ClockOutRequest struct {
	ID      uint      `json:"id"       binding:"required"`
	OutTime time.Time `json:"out_time" binding:"required"`
}

// ClockInResponse returns the id of the created entry; the reader device
// keeps it for the matching clock-out.
type ClockInResponse struct {
	ID uint `json:"id"`
}

// AttendanceWithName pairs an entry with its owner's display name.
type AttendanceWithName struct {
	Name       string          `json:"name"`
	Attendance AttendanceEntry `json:"attendance"`
}

// AttendanceEntry mirrors one attendance row.
type AttendanceEntry struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	InTime      time.Time  `json:"in_time"`
	OutTime     *time.Time `json:"out_time"`
	UpdatedTime time.Time  `json:"updated_time"`
}

// QRAttendanceRequest clocks the authenticated user in or out.
// Type selects the direction: "in" uses InTime, "out" uses OutTime.
type QRAttendanceRequest struct {
	Type    string     `json:"type"    binding:"required,oneof=in out"`
	InTime  *time.Time `json:"in_time"`
	OutTime *time.Time `json:"out_time"`
}

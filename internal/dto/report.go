package dto

import "time"

// ── report module DTOs ──

// CreateReportRequest logs a task/work entry for a user.
type CreateReportRequest struct {
	TaskType    string    `json:"task_type"   binding:"required"`
	Title       string    `json:"title"       binding:"required"`
	Description string    `json:"description" binding:"required"`
	StartTime   time.Time `json:"start_time"  binding:"required"`
	StopTime    time.Time `json:"stop_time"   binding:"required"`
	AssignedBy  string    `json:"assigned_by"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
}

// UpdateReportRequest applies a partial update; nil fields keep their value.
type UpdateReportRequest struct {
	TaskType    *string    `json:"task_type"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	StopTime    *time.Time `json:"stop_time"`
	AssignedBy  *string    `json:"assigned_by"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
}

// ReportsByDateRequest lists one user's reports started on a calendar day.
type ReportsByDateRequest struct {
	Date string `form:"date" binding:"required"` // YYYY-MM-DD
}

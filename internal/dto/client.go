package dto

import "time"

// ── client & project DTOs ──

// CreateClientRequest registers an external client organisation.
type CreateClientRequest struct {
	Name        string `json:"name"        binding:"required"`
	Description string `json:"description"`
	POCName     string `json:"poc_name"    binding:"required"`
	POCPhone    string `json:"poc_phone"   binding:"required"`
	POCEmail    string `json:"poc_email"   binding:"required,email"`
}

// CreateProjectRequest opens a project under a client.
type CreateProjectRequest struct {
	Name          string    `json:"name"           binding:"required"`
	Description   string    `json:"description"`
	StartTime     time.Time `json:"start_time"     binding:"required"`
	StopTime      time.Time `json:"stop_time"      binding:"required"`
	ProjectStatus string    `json:"project_status"`
	Domain        string    `json:"domain"`
}

package model

// Role values carried on users and token claims.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Task types for reports.
const (
	TaskLearning = "learning"
	TaskProject  = "project"
	TaskOthers   = "others"
)

// ValidTaskType reports whether s is one of the report task categories.
func ValidTaskType(s string) bool {
	switch s {
	case TaskLearning, TaskProject, TaskOthers:
		return true
	}
	return false
}

// Report priorities.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityUrgent   = "urgent"
	PriorityCritical = "critical"
	PriorityNone     = "none"
)

// Report statuses.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusStuck      = "stuck"
	StatusClosed     = "closed"
	StatusNone       = "none"
)

// Grievance types. Spellings carried over from the existing schema.
const (
	GrievanceHarassment     = "harrassment"
	GrievanceAbuse          = "abuse"
	GrievanceDiscrimination = "discriminitation"
	GrievanceOthers         = "others"
)

// ValidGrievanceType reports whether s is a known grievance category.
func ValidGrievanceType(s string) bool {
	switch s {
	case GrievanceHarassment, GrievanceAbuse, GrievanceDiscrimination, GrievanceOthers:
		return true
	}
	return false
}

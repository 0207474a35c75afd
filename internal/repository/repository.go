package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface. Constructed once in
// main and injected downward; there is no package-level connection state.
type Repository struct {
	User         UserRepository
	Attendance   AttendanceRepository
	QRAttendance QRAttendanceRepository
	Report       ReportRepository
	Client       ClientRepository
	Project      ProjectRepository
	Inventory    InventoryRepository
	Grievance    GrievanceRepository
	Item         ItemRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Attendance:   NewAttendanceRepo(db),
		QRAttendance: NewQRAttendanceRepo(db),
		Report:       NewReportRepo(db),
		Client:       NewClientRepo(db),
		Project:      NewProjectRepo(db),
		Inventory:    NewInventoryRepo(db),
		Grievance:    NewGrievanceRepo(db),
		Item:         NewItemRepo(db),
	}
}

package employee

import (
	"time"
)

type Employee struct {
	ID           int64
	EmployeeCode *string
	Name         string
	Email        string
	DepartmentID *int64
	Position     *string
	HireDate     *time.Time
	Status       Status
	CreatedAt    time.Time

	// Join
	DepartmentName *string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsActive reports whether the employee appears in attendance reports.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

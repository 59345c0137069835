package dashboard

import "context"

type DashboardRepository interface {
	// GetEmployeeCounts counts employees, optionally within one department.
	GetEmployeeCounts(ctx context.Context, departmentID int64) (EmployeeCounts, error)
}

package schedule

import "context"

type WorkScheduleRepository interface {
	// List returns schedules ordered by employee and weekday. A zero
	// employeeID lists every active employee.
	List(ctx context.Context, employeeID int64) ([]WorkSchedule, error)
}

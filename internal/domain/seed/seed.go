package seed

import (
	"context"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/department"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/holiday"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/schedule"
)

// Options controls a seeding run. A zero Now uses the current time and a
// zero RandomSeed picks one from the clock.
type Options struct {
	Reset      bool
	Now        time.Time
	RandomSeed uint64
}

// Result reports what a run inserted.
type Result struct {
	Skipped        bool      `json:"skipped"`
	RandomSeed     uint64    `json:"random_seed"`
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	Departments    int       `json:"departments"`
	Employees      int       `json:"employees"`
	Holidays       int       `json:"holidays"`
	WorkSchedules  int       `json:"work_schedules"`
	AttendanceRows int64     `json:"attendance_rows"`
	LeaveRows      int64     `json:"leave_rows"`
	HolidayRows    int64     `json:"holiday_rows"`
}

type SeedRepository interface {
	// HasData reports whether any employee exists.
	HasData(ctx context.Context) (bool, error)
	// Reset empties every table and restarts identities.
	Reset(ctx context.Context) error
	InsertDepartments(ctx context.Context, departments []department.Department) error
	InsertEmployees(ctx context.Context, employees []employee.Employee) ([]int64, error)
	InsertHolidays(ctx context.Context, holidays []holiday.Holiday) error
	CopyWorkSchedules(ctx context.Context, schedules []schedule.WorkSchedule) (int64, error)
	CopyAttendance(ctx context.Context, rows []attendance.Attendance) (int64, error)
	CopyLeaves(ctx context.Context, leaves []leave.Leave) (int64, error)
	// FlagHolidays marks attendance rows that fall on a holiday.
	FlagHolidays(ctx context.Context) (int64, error)
}

type SeedService interface {
	// Run populates reference data and generated history in one transaction.
	// Without Reset it does nothing when data already exists.
	Run(ctx context.Context, opts Options) (Result, error)
}

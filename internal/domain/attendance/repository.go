package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (Attendance, error)
	// ClockIn starts the record for the day. It fails with ErrAlreadyClockedIn
	// when a clock-in already exists for that day.
	ClockIn(ctx context.Context, a Attendance) (Attendance, error)
	ClockOut(ctx context.Context, a Attendance) (Attendance, error)
	Upsert(ctx context.Context, a Attendance) (Attendance, error)
}

// ReportRepository runs the read-only aggregate queries. Every method only
// considers active employees.
type ReportRepository interface {
	Daily(ctx context.Context, day time.Time, departmentID int64) ([]DailyRow, error)
	MonthlySummary(ctx context.Context, f PeriodFilter) ([]MonthlySummaryRow, error)
	MonthlyInOut(ctx context.Context, f PeriodFilter) ([]InOutRow, error)
	LateClockIns(ctx context.Context, f PeriodFilter, threshold string) ([]LateRow, error)
	Overtime(ctx context.Context, f PeriodFilter) ([]OvertimeRow, error)
	OvertimeByEmployee(ctx context.Context, f PeriodFilter) ([]OvertimeByEmployeeRow, error)
	PeriodTotals(ctx context.Context, f PeriodFilter, threshold string) (PeriodTotals, error)
}

// MaintenanceRepository backs the nightly attendance jobs.
type MaintenanceRepository interface {
	// MarkAbsent inserts an absent row for every active employee hired by day
	// that has no record, no approved leave and no holiday on it.
	MarkAbsent(ctx context.Context, day time.Time) (int64, error)
	// CloseOpenSessions clocks out records dated before the given day that
	// were never closed. The scheduled end time is used when it follows the
	// clock-in, otherwise clock-in plus standardHours.
	CloseOpenSessions(ctx context.Context, before time.Time, standardHours decimal.Decimal) (int64, error)
}

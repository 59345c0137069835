package attendance

import (
	"context"

	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/export"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn starts today's record for an active employee
	ClockIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// ClockOut closes today's record and computes hours and overtime
	ClockOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// Record creates or replaces a record for any day (admin only)
	Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)
}

// ReportService computes the attendance reports
type ReportService interface {
	Daily(ctx context.Context, req DailyReportRequest) ([]DailyRow, error)
	MonthlySummary(ctx context.Context, req MonthlyReportRequest) ([]MonthlySummaryRow, error)
	MonthlyInOut(ctx context.Context, req MonthlyReportRequest) ([]InOutRow, error)
	LateClockIns(ctx context.Context, req LateReportRequest) ([]LateRow, error)
	Overtime(ctx context.Context, req MonthlyReportRequest) ([]OvertimeRow, error)
	OvertimeByEmployee(ctx context.Context, req MonthlyReportRequest) ([]OvertimeByEmployeeRow, error)

	// Export renders a report as a table for CSV or XLSX download
	Export(ctx context.Context, req ExportRequest) (export.Table, error)
}

package attendance

import (
	"context"
	"fmt"
	"strconv"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/export"
)

type ReportServiceImpl struct {
	reportRepo attendance.ReportRepository
	policy     attendance.Policy
}

func NewReportService(reportRepo attendance.ReportRepository, policy attendance.Policy) attendance.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		policy:     policy,
	}
}

func (s *ReportServiceImpl) threshold() string {
	return attendance.FormatTimeOfDay(s.policy.LateThreshold)
}

// Daily implements attendance.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, req attendance.DailyReportRequest) ([]attendance.DailyRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.Daily(ctx, req.Day(), req.DepartmentID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Punctuality = s.policy.Punctuality(rows[i].ClockIn, rows[i].Status)
	}
	return rows, nil
}

// MonthlySummary implements attendance.ReportService.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, req attendance.MonthlyReportRequest) ([]attendance.MonthlySummaryRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.reportRepo.MonthlySummary(ctx, req.Period())
}

// MonthlyInOut implements attendance.ReportService.
func (s *ReportServiceImpl) MonthlyInOut(ctx context.Context, req attendance.MonthlyReportRequest) ([]attendance.InOutRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.reportRepo.MonthlyInOut(ctx, req.Period())
}

// LateClockIns implements attendance.ReportService.
func (s *ReportServiceImpl) LateClockIns(ctx context.Context, req attendance.LateReportRequest) ([]attendance.LateRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.LateClockIns(ctx, req.Period(), s.threshold())
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ClockIn != nil {
			rows[i].LateMinutes = s.policy.LateMinutes(*rows[i].ClockIn)
		}
		rows[i].LateBy = s.policy.LateBy(rows[i].ClockIn)
	}
	return rows, nil
}

// Overtime implements attendance.ReportService.
func (s *ReportServiceImpl) Overtime(ctx context.Context, req attendance.MonthlyReportRequest) ([]attendance.OvertimeRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.reportRepo.Overtime(ctx, req.Period())
}

// OvertimeByEmployee implements attendance.ReportService.
func (s *ReportServiceImpl) OvertimeByEmployee(ctx context.Context, req attendance.MonthlyReportRequest) ([]attendance.OvertimeByEmployeeRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.reportRepo.OvertimeByEmployee(ctx, req.Period())
}

// Export implements attendance.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req attendance.ExportRequest) (export.Table, error) {
	if err := req.Validate(); err != nil {
		return export.Table{}, err
	}

	switch req.Type {
	case attendance.ReportDaily:
		rows, err := s.Daily(ctx, req.Daily)
		if err != nil {
			return export.Table{}, err
		}
		return dailyTable(req.Daily.Date, rows), nil
	default:
		rows, err := s.MonthlySummary(ctx, req.Monthly)
		if err != nil {
			return export.Table{}, err
		}
		return monthlyTable(req.Monthly.Year+"-"+req.Monthly.Month, rows), nil
	}
}

func dailyTable(date string, rows []attendance.DailyRow) export.Table {
	t := export.Table{
		Title:   "Daily " + date,
		Headers: []string{"Code", "Name", "Department", "Date", "Clock In", "Clock Out", "Status", "Hours", "Overtime", "Punctuality"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		status := ""
		if r.Status != nil {
			status = string(*r.Status)
		}
		t.Rows = append(t.Rows, []string{
			deref(r.EmployeeCode), r.Name, deref(r.DepartmentName), r.Date,
			deref(r.ClockIn), deref(r.ClockOut), status,
			formatHoursPtr(r.HoursWorked), formatHoursPtr(r.OvertimeHours), string(r.Punctuality),
		})
	}
	return t
}

func monthlyTable(period string, rows []attendance.MonthlySummaryRow) export.Table {
	t := export.Table{
		Title: "Monthly " + period,
		Headers: []string{"Code", "Name", "Department", "Present", "Absent", "Half Days", "Weekend Work",
			"Records", "Avg Hours", "Total Overtime", "Attendance %"},
		Rows: make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			deref(r.EmployeeCode), r.Name, deref(r.DepartmentName),
			strconv.Itoa(r.PresentDays), strconv.Itoa(r.AbsentDays), strconv.Itoa(r.HalfDays),
			strconv.Itoa(r.WeekendWork), strconv.Itoa(r.TotalRecords),
			formatHours(r.AvgHours), formatHours(r.TotalOvertime), fmt.Sprintf("%.2f", r.AttendancePercent),
		})
	}
	return t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

func formatHoursPtr(h *float64) string {
	if h == nil {
		return ""
	}
	return formatHours(*h)
}

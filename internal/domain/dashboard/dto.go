package dashboard

import (
	"math"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
)

// SummaryResponse is the dashboard header for one month.
type SummaryResponse struct {
	Month                   string  `json:"month"`
	Year                    string  `json:"year"`
	TotalEmployees          int     `json:"total_employees"`
	ActiveEmployees         int     `json:"active_employees"`
	TotalPresent            int     `json:"total_present"`
	TotalAbsent             int     `json:"total_absent"`
	TotalHalfDays           int     `json:"total_half_days"`
	AverageAttendance       float64 `json:"average_attendance"`
	TotalLateArrivals       int     `json:"total_late_arrivals"`
	TotalOvertimeHours      float64 `json:"total_overtime_hours"`
	AverageHoursWorked      float64 `json:"avg_hours_worked"`
	EmployeesWithoutRecords int     `json:"employees_without_records"`
}

// EmployeeCounts is the headcount used by the summary.
type EmployeeCounts struct {
	Total  int
	Active int
}

// Fold accumulates monthly summary rows into totals. The weighted average
// counts a half day as half a present day and is 0 when there is nothing to
// weigh.
func Fold(rows []attendance.MonthlySummaryRow) SummaryResponse {
	var s SummaryResponse
	for _, r := range rows {
		s.TotalPresent += r.PresentDays
		s.TotalAbsent += r.AbsentDays
		s.TotalHalfDays += r.HalfDays
		if r.TotalRecords == 0 {
			s.EmployeesWithoutRecords++
		}
	}

	denominator := float64(s.TotalPresent + s.TotalAbsent + s.TotalHalfDays)
	if denominator > 0 {
		weighted := float64(s.TotalPresent) + 0.5*float64(s.TotalHalfDays)
		s.AverageAttendance = math.Round(10000*weighted/denominator) / 100
	}
	return s
}

package attendance

import (
	"testing"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstMessage(t *testing.T, err error) string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs.First()
}

func TestMonthlyReportRequestValidate(t *testing.T) {
	tests := []struct {
		name  string
		month string
		year  string
		msg   string
	}{
		{"valid", "07", "2025", ""},
		{"missing month", "", "2025", "Month and year are required"},
		{"missing year", "07", "", "Month and year are required"},
		{"one digit month", "7", "2025", "Invalid month or year format. Use MM and YYYY."},
		{"two digit year", "07", "25", "Invalid month or year format. Use MM and YYYY."},
		{"month out of range", "13", "2025", "Invalid month or year format. Use MM and YYYY."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := MonthlyReportRequest{Month: tt.month, Year: tt.year}
			err := req.Validate()
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.msg, firstMessage(t, err))
		})
	}
}

func TestMonthlyReportRequestPeriod(t *testing.T) {
	req := MonthlyReportRequest{Month: "12", Year: "2025", DepartmentID: 3, EmployeeID: 7}
	require.NoError(t, req.Validate())

	p := req.Period()
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), p.To)
	assert.Equal(t, int64(3), p.DepartmentID)
	assert.Equal(t, int64(7), p.EmployeeID)
}

func TestDailyReportRequestValidate(t *testing.T) {
	assert.Equal(t, "Date is required", firstMessage(t, (&DailyReportRequest{}).Validate()))
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", firstMessage(t, (&DailyReportRequest{Date: "21/07/2025"}).Validate()))

	req := DailyReportRequest{Date: "2025-07-21"}
	require.NoError(t, req.Validate())
	assert.Equal(t, time.July, req.Day().Month())
}

func TestLateReportRequest(t *testing.T) {
	assert.Equal(t, "Either date or month and year are required", firstMessage(t, (&LateReportRequest{}).Validate()))
	assert.Equal(t, "Either date or month and year are required", firstMessage(t, (&LateReportRequest{Month: "07"}).Validate()))

	byDate := LateReportRequest{Date: "2025-07-21", Month: "01", Year: "2020"}
	require.NoError(t, byDate.Validate())
	p := byDate.Period()
	assert.Equal(t, time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC), p.To)

	byMonth := LateReportRequest{Month: "07", Year: "2025", DepartmentID: 2}
	require.NoError(t, byMonth.Validate())
	p = byMonth.Period()
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), p.To)
	assert.Equal(t, int64(2), p.DepartmentID)
}

func TestRecordAttendanceRequest(t *testing.T) {
	bad := RecordAttendanceRequest{EmployeeID: 0, Date: "2025-7-21", Status: "sleeping", ClockOut: ptr("17:00")}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, bad.Validate(), &verrs)
	m := verrs.ToMap()
	for _, f := range []string{"employee_id", "date", "status", "clock_in"} {
		assert.Contains(t, m, f)
	}

	req := RecordAttendanceRequest{
		EmployeeID:  3,
		Date:        "2025-07-21",
		ClockIn:     ptr("09:15"),
		Status:      "present",
		HoursWorked: ptr(8.25),
	}
	require.NoError(t, req.Validate())

	a := req.ToEntity(DefaultPolicy())
	assert.Equal(t, "09:15:00", *a.ClockIn)
	assert.Nil(t, a.ClockOut)
	assert.Equal(t, "8.25", a.HoursWorked.String())
	assert.Equal(t, "0.25", a.OvertimeHours.String())
	assert.False(t, a.IsWeekend, "2025-07-21 is a Monday")
}

func TestRecordAttendanceRequest_DerivesHours(t *testing.T) {
	req := RecordAttendanceRequest{
		EmployeeID: 3,
		Date:       "2025-07-19",
		ClockIn:    ptr("09:00:00"),
		ClockOut:   ptr("13:00:00"),
		Status:     "present",
	}
	require.NoError(t, req.Validate())

	a := req.ToEntity(DefaultPolicy())
	assert.Equal(t, "4", a.HoursWorked.String())
	assert.True(t, a.OvertimeHours.IsZero())
	assert.True(t, a.IsWeekend, "2025-07-19 is a Saturday")
}

func TestExportRequestValidate(t *testing.T) {
	assert.Error(t, (&ExportRequest{Type: "weekly"}).Validate())
	assert.Error(t, (&ExportRequest{Type: ReportMonthly}).Validate())
	assert.NoError(t, (&ExportRequest{Type: ReportDaily, Daily: DailyReportRequest{Date: "2025-07-21"}}).Validate())
}

func TestCalendarDay(t *testing.T) {
	eastern := time.FixedZone("EDT", -4*3600)
	evening := time.Date(2025, 7, 21, 20, 30, 0, 0, eastern)

	day := CalendarDay(evening)
	assert.Equal(t, "2025-07-21", day.Format(time.DateOnly))
	assert.Equal(t, time.UTC, day.Location())
	assert.Equal(t, "2025-07-22", CalendarDay(evening.UTC()).Format(time.DateOnly))
}

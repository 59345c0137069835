package attendance

import (
	"strconv"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	msgMonthYearRequired = "Month and year are required"
	msgMonthYearFormat   = "Invalid month or year format. Use MM and YYYY."
	msgDateRequired      = "Date is required"
	msgDateFormat        = "Invalid date format. Use YYYY-MM-DD."
)

// PeriodFilter selects records with From <= date < To for active employees.
// A DepartmentID at or below the sentinel and a zero EmployeeID are ignored.
type PeriodFilter struct {
	From         time.Time
	To           time.Time
	DepartmentID int64
	EmployeeID   int64
}

// DayPeriod covers exactly one calendar day.
func DayPeriod(day time.Time, departmentID int64) PeriodFilter {
	return PeriodFilter{From: day, To: day.AddDate(0, 0, 1), DepartmentID: departmentID}
}

type DailyReportRequest struct {
	Date         string
	DepartmentID int64
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: msgDateRequired})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: msgDateFormat})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Day returns the parsed date. Call after Validate.
func (r *DailyReportRequest) Day() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

// MonthlyReportRequest is shared by every month scoped report.
type MonthlyReportRequest struct {
	Month        string
	Year         string
	DepartmentID int64
	EmployeeID   int64
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case validator.IsEmpty(r.Month) || validator.IsEmpty(r.Year):
		errs = append(errs, validator.ValidationError{Field: "month", Message: msgMonthYearRequired})
	case !validator.IsValidMonth(r.Month) || !validator.IsValidYear(r.Year):
		errs = append(errs, validator.ValidationError{Field: "month", Message: msgMonthYearFormat})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Period returns the month as a half-open range. Call after Validate.
func (r *MonthlyReportRequest) Period() PeriodFilter {
	return PeriodFilter{
		From:         monthStart(r.Month, r.Year),
		To:           monthStart(r.Month, r.Year).AddDate(0, 1, 0),
		DepartmentID: r.DepartmentID,
		EmployeeID:   r.EmployeeID,
	}
}

func monthStart(month, year string) time.Time {
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
}

// LateReportRequest takes either a single date or a month and year. The
// date wins when both are given.
type LateReportRequest struct {
	Date         string
	Month        string
	Year         string
	DepartmentID int64
}

func (r *LateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case !validator.IsEmpty(r.Date):
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: msgDateFormat})
		}
	case validator.IsEmpty(r.Month) || validator.IsEmpty(r.Year):
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Either date or month and year are required"})
	case !validator.IsValidMonth(r.Month) || !validator.IsValidYear(r.Year):
		errs = append(errs, validator.ValidationError{Field: "month", Message: msgMonthYearFormat})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Period returns the selected window. Call after Validate.
func (r *LateReportRequest) Period() PeriodFilter {
	if !validator.IsEmpty(r.Date) {
		d, _ := validator.IsValidDate(r.Date)
		return DayPeriod(d, r.DepartmentID)
	}
	m := MonthlyReportRequest{Month: r.Month, Year: r.Year, DepartmentID: r.DepartmentID}
	return m.Period()
}

// ClockRequest is the body of clock-in and clock-out.
type ClockRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordAttendanceRequest creates or replaces one day's record. When
// hours_worked is omitted it is derived from the clock times.
type RecordAttendanceRequest struct {
	EmployeeID  int64    `json:"employee_id"`
	Date        string   `json:"date"`
	ClockIn     *string  `json:"clock_in,omitempty"`
	ClockOut    *string  `json:"clock_out,omitempty"`
	Status      string   `json:"status"`
	HoursWorked *float64 `json:"hours_worked,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: msgDateFormat})
	}
	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: present, absent, half_day, weekend"})
	}
	if r.ClockIn != nil && !validator.IsValidClockTime(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: ErrInvalidClockTime.Error()})
	}
	if r.ClockOut != nil && !validator.IsValidClockTime(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: ErrInvalidClockTime.Error()})
	}
	if r.ClockOut != nil && r.ClockIn == nil {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in is required when clock_out is set"})
	}
	if r.HoursWorked != nil && (*r.HoursWorked < 0 || *r.HoursWorked > 24) {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "hours_worked must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity builds the record, normalizing clock times to HH:MM:SS and
// applying the overtime rule of p. Call after Validate.
func (r *RecordAttendanceRequest) ToEntity(p Policy) Attendance {
	day, _ := validator.IsValidDate(r.Date)
	a := Attendance{
		EmployeeID: r.EmployeeID,
		Date:       day,
		Status:     Status(r.Status),
		IsWeekend:  IsWeekendDay(day),
		Notes:      r.Notes,
	}

	var in, out time.Duration
	if r.ClockIn != nil {
		in, _ = ParseTimeOfDay(*r.ClockIn)
		s := FormatTimeOfDay(in)
		a.ClockIn = &s
	}
	if r.ClockOut != nil {
		out, _ = ParseTimeOfDay(*r.ClockOut)
		s := FormatTimeOfDay(out)
		a.ClockOut = &s
	}

	switch {
	case r.HoursWorked != nil:
		a.HoursWorked = decimal.NewFromFloat(*r.HoursWorked).Round(2)
	case a.ClockIn != nil && a.ClockOut != nil:
		a.HoursWorked = HoursBetween(in, out)
	}
	a.OvertimeHours = p.Overtime(a.HoursWorked)
	return a
}

// AttendanceResponse is the API view of a single record.
type AttendanceResponse struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employee_id"`
	Date          string  `json:"date"`
	ClockIn       *string `json:"clock_in"`
	ClockOut      *string `json:"clock_out"`
	Status        Status  `json:"status"`
	HoursWorked   float64 `json:"hours_worked"`
	OvertimeHours float64 `json:"overtime_hours"`
	IsWeekend     bool    `json:"is_weekend"`
	IsHoliday     bool    `json:"is_holiday"`
	Notes         *string `json:"notes,omitempty"`
}

func (a Attendance) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          a.Date.Format("2006-01-02"),
		ClockIn:       a.ClockIn,
		ClockOut:      a.ClockOut,
		Status:        a.Status,
		HoursWorked:   a.HoursWorked.InexactFloat64(),
		OvertimeHours: a.OvertimeHours.InexactFloat64(),
		IsWeekend:     a.IsWeekend,
		IsHoliday:     a.IsHoliday,
		Notes:         a.Notes,
	}
}

// ReportType names an exportable report.
type ReportType string

const (
	ReportDaily   ReportType = "daily"
	ReportMonthly ReportType = "monthly"
)

// ExportRequest selects a report and its parameters for download.
type ExportRequest struct {
	Type    ReportType
	Daily   DailyReportRequest
	Monthly MonthlyReportRequest
}

func (r *ExportRequest) Validate() error {
	switch r.Type {
	case ReportDaily:
		return r.Daily.Validate()
	case ReportMonthly:
		return r.Monthly.Validate()
	default:
		return validator.ValidationErrors{{Field: "type", Message: "report type must be daily or monthly"}}
	}
}

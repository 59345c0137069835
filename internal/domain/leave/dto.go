package leave

import (
	"strings"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
)

type LeaveResponse struct {
	ID             int64       `json:"id"`
	EmployeeID     int64       `json:"employee_id"`
	EmployeeName   string      `json:"employee_name,omitempty"`
	EmployeeCode   *string     `json:"employee_code,omitempty"`
	DepartmentName *string     `json:"department_name,omitempty"`
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
	Days           int         `json:"days"`
	LeaveType      LeaveType   `json:"leave_type"`
	IsPaid         bool        `json:"is_paid"`
	Reason         *string     `json:"reason"`
	Status         LeaveStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (l Leave) ToResponse() LeaveResponse {
	return LeaveResponse{
		ID:             l.ID,
		EmployeeID:     l.EmployeeID,
		EmployeeName:   l.EmployeeName,
		EmployeeCode:   l.EmployeeCode,
		DepartmentName: l.DepartmentName,
		StartDate:      l.StartDate.Format("2006-01-02"),
		EndDate:        l.EndDate.Format("2006-01-02"),
		Days:           l.Days(),
		LeaveType:      l.LeaveType,
		IsPaid:         l.IsPaid,
		Reason:         l.Reason,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
	}
}

// LeaveFilter narrows GET /api/leaves. Month and year must be given
// together; a leave matches a month when it starts or ends in it.
type LeaveFilter struct {
	Month        string
	Year         string
	DepartmentID int64
	EmployeeID   int64
	Status       string
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != "" || f.Year != "" {
		if !validator.IsValidMonth(f.Month) || !validator.IsValidYear(f.Year) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "Invalid month or year format. Use MM and YYYY.",
			})
		}
	}
	if f.Status != "" && !validator.IsInSlice(f.Status, []string{string(LeaveStatusPending), string(LeaveStatusApproved), string(LeaveStatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasMonth reports whether the month window applies.
func (f *LeaveFilter) HasMonth() bool {
	return f.Month != "" && f.Year != ""
}

// MonthRange returns the half-open month window. Call after Validate.
func (f *LeaveFilter) MonthRange() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01", f.Year+"-"+f.Month)
	return start, start.AddDate(0, 1, 0)
}

// ApplyLeaveRequest is the body of POST /api/leaves. IsPaid defaults by type.
type ApplyLeaveRequest struct {
	EmployeeID int64   `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	LeaveType  string  `json:"leave_type"`
	IsPaid     *bool   `json:"is_paid,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	types := make([]string, len(LeaveTypes))
	for i, t := range LeaveTypes {
		types[i] = string(t)
	}
	if !validator.IsInSlice(r.LeaveType, types) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of: " + strings.Join(types, ", ")})
	}

	if r.Reason != nil && len(*r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity builds a pending leave. Call after Validate.
func (r *ApplyLeaveRequest) ToEntity() Leave {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	t := LeaveType(r.LeaveType)
	paid := t.DefaultPaid()
	if r.IsPaid != nil {
		paid = *r.IsPaid
	}
	return Leave{
		EmployeeID: r.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		LeaveType:  t,
		IsPaid:     paid,
		Reason:     r.Reason,
		Status:     LeaveStatusPending,
	}
}

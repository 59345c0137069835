package response

import (
	"errors"
	"net/http"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/auth"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/department"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/export"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.First(), validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrMissingToken):
		Unauthorized(w, "Access token required")
	case errors.Is(err, auth.ErrInvalidToken):
		Forbidden(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privileges required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "User with this email already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Employee with this email already exists")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		BadRequest(w, "Department does not exist", nil)
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Employee has already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Employee has already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		NotFound(w, "No clock-in found for today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, export.ErrUnsupportedFormat):
		BadRequest(w, "Format must be json, csv or xlsx", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

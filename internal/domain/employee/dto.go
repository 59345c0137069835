package employee

import (
	"strings"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID             int64     `json:"id"`
	EmployeeCode   *string   `json:"employee_code"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DepartmentID   *int64    `json:"department_id"`
	DepartmentName *string   `json:"department_name"`
	Position       *string   `json:"position"`
	HireDate       *string   `json:"hire_date"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func (e Employee) ToResponse() EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		Name:           e.Name,
		Email:          e.Email,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Position:       e.Position,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt,
	}
	if e.HireDate != nil {
		d := e.HireDate.Format("2006-01-02")
		resp.HireDate = &d
	}
	return resp
}

// CreateEmployeeRequest carries the fields accepted by POST /api/employees.
type CreateEmployeeRequest struct {
	EmployeeCode *string `json:"employee_code,omitempty"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	DepartmentID int64   `json:"department_id"`
	Position     *string `json:"position,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
	Status       string  `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validateFields(r.Name, r.Email, r.DepartmentID, r.HireDate, r.Status)
	if r.EmployeeCode != nil && validator.IsEmpty(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must not be empty if provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity normalizes the request into an Employee, defaulting the status to active.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	deptID := r.DepartmentID
	e := Employee{
		EmployeeCode: trimmed(r.EmployeeCode),
		Name:         strings.TrimSpace(r.Name),
		Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		DepartmentID: &deptID,
		Position:     trimmed(r.Position),
		HireDate:     parseDate(r.HireDate),
		Status:       StatusActive,
	}
	if r.Status != "" {
		e.Status = Status(r.Status)
	}
	return e
}

// UpdateEmployeeRequest replaces name, email, department, position, hire
// date and status. ID comes from the URL.
type UpdateEmployeeRequest struct {
	ID           int64   `json:"-"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	DepartmentID int64   `json:"department_id"`
	Position     *string `json:"position,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
	Status       string  `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	errs = append(errs, validateFields(r.Name, r.Email, r.DepartmentID, r.HireDate, r.Status)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply copies the request onto an existing employee. An empty status keeps
// the current one.
func (r *UpdateEmployeeRequest) Apply(e Employee) Employee {
	deptID := r.DepartmentID
	e.Name = strings.TrimSpace(r.Name)
	e.Email = strings.ToLower(strings.TrimSpace(r.Email))
	e.DepartmentID = &deptID
	e.Position = trimmed(r.Position)
	e.HireDate = parseDate(r.HireDate)
	if r.Status != "" {
		e.Status = Status(r.Status)
	}
	return e
}

// EmployeeFilter narrows GET /api/employees. Status "" means active only,
// "all" disables the status filter.
type EmployeeFilter struct {
	DepartmentID int64
	Status       string
	Search       string
}

const StatusAll = "all"

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{string(StatusActive), string(StatusInactive), StatusAll}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, all",
		})
	}
	if len(f.Search) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "search",
			Message: "search must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EffectiveStatus resolves the status actually queried, "" meaning any.
func (f *EmployeeFilter) EffectiveStatus() Status {
	switch f.Status {
	case "":
		return StatusActive
	case StatusAll:
		return ""
	default:
		return Status(f.Status)
	}
}

func validateFields(name, email string, departmentID int64, hireDate *string, status string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(strings.TrimSpace(email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if departmentID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if hireDate != nil {
		if _, ok := validator.IsValidDate(*hireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if status != "" && status != string(StatusActive) && status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	return errs
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	d, ok := validator.IsValidDate(*s)
	if !ok {
		return nil
	}
	return &d
}

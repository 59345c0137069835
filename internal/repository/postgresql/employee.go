package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/querybuilder"
	"github.com/jackc/pgx/v5"
)

const (
	constraintEmployeeEmail = "employees_email_key"
	constraintEmployeeCode  = "employees_employee_code_key"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.employee_code, e.name, e.email, e.department_id, e.position,
		e.hire_date, e.status, e.created_at, d.name
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.Email, &emp.DepartmentID, &emp.Position,
		&emp.HireDate, &emp.Status, &emp.CreatedAt, &emp.DepartmentName,
	)
	return emp, err
}

// mapEmployeeWriteError translates constraint violations on employees.
func mapEmployeeWriteError(err error) error {
	switch {
	case isUniqueViolation(err, constraintEmployeeEmail):
		return employee.ErrEmailExists
	case isUniqueViolation(err, constraintEmployeeCode):
		return employee.ErrEmployeeCodeExists
	case isForeignKeyViolation(err):
		return employee.ErrDepartmentNotFound
	}
	return nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+`
	WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %d: %w", id, err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	status := filter.EffectiveStatus()
	search := strings.TrimSpace(filter.Search)

	b := querybuilder.New(employeeSelect).
		Where(
			querybuilder.Eq("e.status", status, status != ""),
			querybuilder.Eq("e.department_id", filter.DepartmentID, filter.DepartmentID > 1),
		)
	if search != "" {
		pattern := "%" + search + "%"
		b.WhereRaw("(e.name ILIKE ? OR e.email ILIKE ? OR e.employee_code ILIKE ?)", pattern, pattern, pattern)
	}
	query, args := b.Suffix("ORDER BY e.name ASC, e.id ASC").Build()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (employee_code, name, email, department_id, position, hire_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode, newEmployee.Name, newEmployee.Email, newEmployee.DepartmentID,
		newEmployee.Position, newEmployee.HireDate, newEmployee.Status,
	).Scan(&id)
	if err != nil {
		if mapped := mapEmployeeWriteError(err); mapped != nil {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, department_id = $3, position = $4, hire_date = $5, status = $6
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query, e.Name, e.Email, e.DepartmentID, e.Position, e.HireDate, e.Status, e.ID)
	if err != nil {
		if mapped := mapEmployeeWriteError(err); mapped != nil {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %d: %w", e.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	return r.GetByID(ctx, e.ID)
}

// UpdateStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status for employee with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

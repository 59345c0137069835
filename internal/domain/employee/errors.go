package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("employee with this email already exists")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrDepartmentNotFound = errors.New("department does not exist")
	ErrEmployeeInactive   = errors.New("employee is inactive")
)

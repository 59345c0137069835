package master

import (
	"context"
	"fmt"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/department"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/holiday"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/schedule"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
)

type MasterService interface {
	// Department operations
	ListDepartments(ctx context.Context) ([]department.Department, error)
	GetDepartment(ctx context.Context, id int64) (department.Department, error)

	// Holiday operations
	ListHolidays(ctx context.Context, req holiday.ListHolidaysRequest) ([]holiday.HolidayResponse, error)

	// Work schedule operations
	ListWorkSchedules(ctx context.Context, employeeID int64) ([]schedule.WorkScheduleResponse, error)
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	holidayRepo    holiday.HolidayRepository
	scheduleRepo   schedule.WorkScheduleRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	holidayRepo holiday.HolidayRepository,
	scheduleRepo schedule.WorkScheduleRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		holidayRepo:    holidayRepo,
		scheduleRepo:   scheduleRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id int64) (department.Department, error) {
	if id <= 0 {
		return department.Department{}, validator.ValidationErrors{{Field: "id", Message: "id must be a positive integer"}}
	}
	return s.departmentRepo.GetByID(ctx, id)
}

// ==================== HOLIDAY OPERATIONS ====================

func (s *masterServiceImpl) ListHolidays(ctx context.Context, req holiday.ListHolidaysRequest) ([]holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.List(ctx, req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, h.ToResponse())
	}
	return responses, nil
}

// ==================== WORK SCHEDULE OPERATIONS ====================

func (s *masterServiceImpl) ListWorkSchedules(ctx context.Context, employeeID int64) ([]schedule.WorkScheduleResponse, error) {
	if employeeID < 0 {
		return nil, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id must be a positive integer"}}
	}

	schedules, err := s.scheduleRepo.List(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, ws.ToResponse())
	}
	return responses, nil
}

package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	tx             postgresql.Transactor
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	policy         attendance.Policy
	now            func() time.Time
}

func NewAttendanceService(
	tx postgresql.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy attendance.Policy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		policy:         policy,
		now:            time.Now,
	}
}

// today splits the current wall clock into a calendar date and a time of day.
func (s *AttendanceServiceImpl) today() (time.Time, string) {
	now := s.now()
	day := attendance.CalendarDay(now)
	sinceMidnight := time.Duration(now.Hour())*time.Hour +
		time.Duration(now.Minute())*time.Minute +
		time.Duration(now.Second())*time.Second
	return day, attendance.FormatTimeOfDay(sinceMidnight)
}

func (s *AttendanceServiceImpl) activeEmployee(ctx context.Context, id int64) error {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !e.IsActive() {
		return employee.ErrEmployeeInactive
	}
	return nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := s.activeEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day, clock := s.today()
	created, err := s.attendanceRepo.ClockIn(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       day,
		ClockIn:    &clock,
		Status:     attendance.StatusPresent,
		IsWeekend:  attendance.IsWeekendDay(day),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return created.ToResponse(), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := s.activeEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day, clock := s.today()
	var updated attendance.Attendance
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		current, err := s.attendanceRepo.GetByEmployeeAndDate(txCtx, req.EmployeeID, day)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return attendance.ErrNotClockedIn
			}
			return err
		}
		if current.ClockIn == nil {
			return attendance.ErrNotClockedIn
		}
		if current.ClockOut != nil {
			return attendance.ErrAlreadyClockedOut
		}

		in, err := attendance.ParseTimeOfDay(*current.ClockIn)
		if err != nil {
			return fmt.Errorf("stored clock-in %q: %w", *current.ClockIn, err)
		}
		out, _ := attendance.ParseTimeOfDay(clock)

		current.ClockOut = &clock
		current.HoursWorked = attendance.HoursBetween(in, out)
		current.OvertimeHours = s.policy.Overtime(current.HoursWorked)

		updated, err = s.attendanceRepo.ClockOut(txCtx, current)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Record implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	saved, err := s.attendanceRepo.Upsert(ctx, req.ToEntity(s.policy))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return saved.ToResponse(), nil
}

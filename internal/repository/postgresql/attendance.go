package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceReturning = `id, employee_id, date, to_char(clock_in, 'HH24:MI:SS'), to_char(clock_out, 'HH24:MI:SS'),
		status, hours_worked, overtime_hours, is_weekend, is_holiday, notes, created_at`

// isHolidaySQL evaluates to true when the date bound at placeholder p is a holiday.
func isHolidaySQL(p string) string {
	return `EXISTS (SELECT 1 FROM holidays h, (SELECT ` + p + `::date AS date) a WHERE ` + holidayMatchSQL + `)`
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut,
		&a.Status, &a.HoursWorked, &a.OvertimeHours, &a.IsWeekend, &a.IsHoliday, &a.Notes, &a.CreatedAt,
	)
	return a, err
}

// clockValue converts an HH:MM:SS clock into a TIME parameter, NULL when nil.
func clockValue(clock *string) pgtype.Time {
	if clock == nil {
		return pgtype.Time{}
	}
	d, err := attendance.ParseTimeOfDay(*clock)
	if err != nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceReturning + ` FROM attendance WHERE employee_id = $1 AND date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return a, nil
}

// ClockIn implements attendance.AttendanceRepository. A row that exists
// without a clock-in, such as a pre-recorded absence, is taken over.
func (r *attendanceRepositoryImpl) ClockIn(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, clock_in, status, is_weekend, is_holiday)
		VALUES ($1, $2, $3, $4, $5, ` + isHolidaySQL("$2") + `)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET clock_in = EXCLUDED.clock_in,
			status = EXCLUDED.status,
			clock_out = NULL,
			hours_worked = 0,
			overtime_hours = 0
		WHERE attendance.clock_in IS NULL
		RETURNING ` + attendanceReturning

	created, err := scanAttendance(q.QueryRow(ctx, query,
		a.EmployeeID, a.Date, clockValue(a.ClockIn), a.Status, a.IsWeekend,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		if isForeignKeyViolation(err) {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to clock in: %w", err)
	}
	return created, nil
}

// ClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ClockOut(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET clock_out = $1, hours_worked = $2, overtime_hours = $3
		WHERE id = $4 AND clock_out IS NULL
		RETURNING ` + attendanceReturning

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		clockValue(a.ClockOut), a.HoursWorked, a.OvertimeHours, a.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to clock out: %w", err)
	}
	return updated, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, clock_in, clock_out, status, hours_worked, overtime_hours,
			is_weekend, is_holiday, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, ` + isHolidaySQL("$2") + `, $9)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			status = EXCLUDED.status,
			hours_worked = EXCLUDED.hours_worked,
			overtime_hours = EXCLUDED.overtime_hours,
			is_weekend = EXCLUDED.is_weekend,
			is_holiday = EXCLUDED.is_holiday,
			notes = EXCLUDED.notes
		RETURNING ` + attendanceReturning

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		a.EmployeeID, a.Date, clockValue(a.ClockIn), clockValue(a.ClockOut), a.Status,
		a.HoursWorked, a.OvertimeHours, a.IsWeekend, a.Notes,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to save attendance: %w", err)
	}
	return saved, nil
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/department"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/holiday"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/schedule"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/seed"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type seedRepositoryImpl struct {
	db *database.DB
}

func NewSeedRepository(db *database.DB) seed.SeedRepository {
	return &seedRepositoryImpl{db: db}
}

// HasData implements seed.SeedRepository.
func (r *seedRepositoryImpl) HasData(ctx context.Context) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing data: %w", err)
	}
	return exists, nil
}

// Reset implements seed.SeedRepository.
func (r *seedRepositoryImpl) Reset(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	query := `
		TRUNCATE attendance, leaves, work_schedules, holidays, employees, departments, users
		RESTART IDENTITY CASCADE
	`
	if _, err := q.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to reset tables: %w", err)
	}
	return nil
}

// InsertDepartments implements seed.SeedRepository. Ids are kept so the
// sentinel department stays at id 1.
func (r *seedRepositoryImpl) InsertDepartments(ctx context.Context, departments []department.Department) error {
	q := GetQuerier(ctx, r.db)

	for _, d := range departments {
		_, err := q.Exec(ctx,
			`INSERT INTO departments (id, name, description) VALUES ($1, $2, $3)`,
			d.ID, d.Name, d.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert department %q: %w", d.Name, err)
		}
	}

	_, err := q.Exec(ctx, `SELECT setval(pg_get_serial_sequence('departments', 'id'), COALESCE(MAX(id), 1)) FROM departments`)
	if err != nil {
		return fmt.Errorf("failed to advance department sequence: %w", err)
	}
	return nil
}

// InsertEmployees implements seed.SeedRepository.
func (r *seedRepositoryImpl) InsertEmployees(ctx context.Context, employees []employee.Employee) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (employee_code, name, email, department_id, position, hire_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	ids := make([]int64, 0, len(employees))
	for _, e := range employees {
		var id int64
		err := q.QueryRow(ctx, query,
			e.EmployeeCode, e.Name, e.Email, e.DepartmentID, e.Position, e.HireDate, e.Status,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert employee %q: %w", e.Email, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// InsertHolidays implements seed.SeedRepository.
func (r *seedRepositoryImpl) InsertHolidays(ctx context.Context, holidays []holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	for _, h := range holidays {
		_, err := q.Exec(ctx,
			`INSERT INTO holidays (name, date, is_recurring) VALUES ($1, $2, $3)`,
			h.Name, h.Date, h.IsRecurring,
		)
		if err != nil {
			return fmt.Errorf("failed to insert holiday %q: %w", h.Name, err)
		}
	}
	return nil
}

// CopyWorkSchedules implements seed.SeedRepository.
func (r *seedRepositoryImpl) CopyWorkSchedules(ctx context.Context, schedules []schedule.WorkSchedule) (int64, error) {
	q := GetQuerier(ctx, r.db)

	n, err := q.CopyFrom(ctx,
		pgx.Identifier{"work_schedules"},
		[]string{"employee_id", "day_of_week", "start_time", "end_time"},
		pgx.CopyFromSlice(len(schedules), func(i int) ([]any, error) {
			s := schedules[i]
			start, end := clockValue(&s.StartTime), clockValue(&s.EndTime)
			if !start.Valid || !end.Valid {
				return nil, fmt.Errorf("invalid schedule times %q-%q", s.StartTime, s.EndTime)
			}
			return []any{s.EmployeeID, int16(s.DayOfWeek), start, end}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy work schedules: %w", err)
	}
	return n, nil
}

// CopyAttendance implements seed.SeedRepository.
func (r *seedRepositoryImpl) CopyAttendance(ctx context.Context, rows []attendance.Attendance) (int64, error) {
	q := GetQuerier(ctx, r.db)

	n, err := q.CopyFrom(ctx,
		pgx.Identifier{"attendance"},
		[]string{"employee_id", "date", "clock_in", "clock_out", "status", "hours_worked", "overtime_hours", "is_weekend", "is_holiday"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			a := rows[i]
			return []any{
				a.EmployeeID,
				pgtype.Date{Time: a.Date, Valid: true},
				clockValue(a.ClockIn),
				clockValue(a.ClockOut),
				string(a.Status),
				a.HoursWorked.InexactFloat64(),
				a.OvertimeHours.InexactFloat64(),
				a.IsWeekend,
				a.IsHoliday,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy attendance: %w", err)
	}
	return n, nil
}

// CopyLeaves implements seed.SeedRepository.
func (r *seedRepositoryImpl) CopyLeaves(ctx context.Context, leaves []leave.Leave) (int64, error) {
	q := GetQuerier(ctx, r.db)

	n, err := q.CopyFrom(ctx,
		pgx.Identifier{"leaves"},
		[]string{"employee_id", "start_date", "end_date", "leave_type", "is_paid", "reason", "status"},
		pgx.CopyFromSlice(len(leaves), func(i int) ([]any, error) {
			l := leaves[i]
			return []any{
				l.EmployeeID,
				pgtype.Date{Time: l.StartDate, Valid: true},
				pgtype.Date{Time: l.EndDate, Valid: true},
				string(l.LeaveType),
				l.IsPaid,
				l.Reason,
				string(l.Status),
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy leaves: %w", err)
	}
	return n, nil
}

// FlagHolidays implements seed.SeedRepository.
func (r *seedRepositoryImpl) FlagHolidays(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance a
		SET is_holiday = TRUE
		FROM holidays h
		WHERE ` + holidayMatchSQL

	tag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to flag holidays: %w", err)
	}
	return tag.RowsAffected(), nil
}

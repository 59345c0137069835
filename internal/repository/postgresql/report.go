package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/querybuilder"
	"github.com/jackc/pgx/v5"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) attendance.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// scopeFilters restricts a query to active employees, optionally narrowed by
// department and employee.
func scopeFilters(b *querybuilder.Builder, f attendance.PeriodFilter) *querybuilder.Builder {
	return b.WhereRaw("e.status = 'active'").
		Where(
			querybuilder.Eq("e.department_id", f.DepartmentID, f.DepartmentID > 1),
			querybuilder.Eq("e.id", f.EmployeeID, f.EmployeeID > 0),
		)
}

// periodBuilder starts a query over attendance rows a joined to employees e
// and departments d, limited to the period.
func periodBuilder(base string, f attendance.PeriodFilter, args ...interface{}) *querybuilder.Builder {
	b := querybuilder.New(base, args...)
	b.WhereRaw("a.date >= ? AND a.date < ?", f.From, f.To)
	return scopeFilters(b, f)
}

func collect[T any](rows pgx.Rows, scan func(pgx.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return result, nil
}

// Daily implements attendance.ReportRepository.
func (r *reportRepositoryImpl) Daily(ctx context.Context, day time.Time, departmentID int64) ([]attendance.DailyRow, error) {
	q := GetQuerier(ctx, r.db)

	b := querybuilder.New(`
		SELECT e.id, e.employee_code, e.name, d.name,
			to_char(a.clock_in, 'HH24:MI:SS'), to_char(a.clock_out, 'HH24:MI:SS'), a.status,
			a.hours_worked::float8, a.overtime_hours::float8
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN attendance a ON a.employee_id = e.id AND a.date = $1`, day)
	query, args := scopeFilters(b, attendance.PeriodFilter{DepartmentID: departmentID}).
		Suffix("ORDER BY e.name ASC, e.id ASC").
		Build()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily report: %w", err)
	}

	date := day.Format("2006-01-02")
	return collect(rows, func(rows pgx.Rows) (attendance.DailyRow, error) {
		row := attendance.DailyRow{Date: date}
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeCode, &row.Name, &row.DepartmentName,
			&row.ClockIn, &row.ClockOut, &row.Status, &row.HoursWorked, &row.OvertimeHours,
		)
		return row, err
	})
}

// MonthlySummary implements attendance.ReportRepository.
func (r *reportRepositoryImpl) MonthlySummary(ctx context.Context, f attendance.PeriodFilter) ([]attendance.MonthlySummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	b := querybuilder.New(`
		SELECT e.id, e.employee_code, e.name, d.name,
			COUNT(a.id) FILTER (WHERE a.status = 'present'),
			COUNT(a.id) FILTER (WHERE a.status = 'absent'),
			COUNT(a.id) FILTER (WHERE a.status = 'half_day'),
			COUNT(a.id) FILTER (WHERE a.is_weekend AND a.status = 'present'),
			COUNT(a.id),
			COALESCE(ROUND(AVG(a.hours_worked), 2), 0)::float8,
			COALESCE(SUM(a.overtime_hours), 0)::float8,
			CASE WHEN COUNT(a.id) = 0 THEN 0
				ELSE ROUND(100.0 * COUNT(a.id) FILTER (WHERE a.status = 'present') / COUNT(a.id), 2)
			END::float8
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN attendance a ON a.employee_id = e.id AND a.date >= $1 AND a.date < $2`, f.From, f.To)
	query, args := scopeFilters(b, f).
		Suffix("GROUP BY e.id, e.employee_code, e.name, d.name").
		Suffix("ORDER BY e.name ASC, e.id ASC").
		Build()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return collect(rows, func(rows pgx.Rows) (attendance.MonthlySummaryRow, error) {
		var row attendance.MonthlySummaryRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeCode, &row.Name, &row.DepartmentName,
			&row.PresentDays, &row.AbsentDays, &row.HalfDays, &row.WeekendWork, &row.TotalRecords,
			&row.AvgHours, &row.TotalOvertime, &row.AttendancePercent,
		)
		return row, err
	})
}

// MonthlyInOut implements attendance.ReportRepository.
func (r *reportRepositoryImpl) MonthlyInOut(ctx context.Context, f attendance.PeriodFilter) ([]attendance.InOutRow, error) {
	q := GetQuerier(ctx, r.db)

	query, args := periodBuilder(`
		SELECT e.id, e.name, d.name, to_char(a.date, 'YYYY-MM-DD'),
			to_char(a.clock_in, 'HH24:MI:SS'), to_char(a.clock_out, 'HH24:MI:SS'),
			a.hours_worked::float8, a.status
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id`, f).
		Suffix("ORDER BY a.date DESC, e.name ASC").
		Build()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly in/out report: %w", err)
	}

	return collect(rows, func(rows pgx.Rows) (attendance.InOutRow, error) {
		var row attendance.InOutRow
		err := rows.Scan(
			&row.EmployeeID, &row.Name, &row.DepartmentName, &row.Date,
			&row.ClockIn, &row.ClockOut, &row.HoursWorked, &row.Status,
		)
		return row, err
	})
}

// LateClockIns implements attendance.ReportRepository. LateMinutes and
// LateBy are left for the caller.
func (r *reportRepositoryImpl) LateClockIns(ctx context.Context, f attendance.PeriodFilter, threshold string) ([]attendance.LateRow, error) {
	q := GetQuerier(ctx, r.db)

	b := periodBuilder(`
		SELECT e.id, e.employee_code, e.name, d.name, to_char(a.date, 'YYYY-MM-DD'),
			to_char(a.clock_in, 'HH24:MI:SS'), a.hours_worked::float8
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id`, f)
	query, args := b.WhereRaw("a.clock_in IS NOT NULL AND a.clock_in > ?::time", threshold).
		Suffix("ORDER BY a.date ASC, a.clock_in ASC").
		Build()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get late clock-in report: %w", err)
	}

	return collect(rows, func(rows pgx.Rows) (attendance.LateRow, error) {
		var row attendance.LateRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeCode, &row.Name, &row.DepartmentName, &row.Date,
			&row.ClockIn, &row.HoursWorked,
		)
		return row, err
	})
}

// Overtime implements attendance.ReportRepository.
func (r *reportRepositoryImpl) Overtime(ctx context.Context, f attendance.PeriodFilter) ([]attendance.OvertimeRow, error) {
	q := GetQuerier(ctx, r.db)

	b := periodBuilder(`
		SELECT e.id, e.name, d.name, to_char(a.date, 'YYYY-MM-DD'),
			(a.hours_worked - a.overtime_hours)::float8, a.overtime_hours::float8, a.hours_worked::float8
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id`, f)
	query, args := b.WhereRaw("a.overtime_hours > 0").
		Suffix("ORDER BY a.date DESC, a.overtime_hours DESC").
		Build()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime report: %w", err)
	}

	return collect(rows, func(rows pgx.Rows) (attendance.OvertimeRow, error) {
		var row attendance.OvertimeRow
		err := rows.Scan(
			&row.EmployeeID, &row.Name, &row.DepartmentName, &row.Date,
			&row.RegularHours, &row.OvertimeHours, &row.TotalHours,
		)
		return row, err
	})
}

// OvertimeByEmployee implements attendance.ReportRepository.
func (r *reportRepositoryImpl) OvertimeByEmployee(ctx context.Context, f attendance.PeriodFilter) ([]attendance.OvertimeByEmployeeRow, error) {
	q := GetQuerier(ctx, r.db)

	b := periodBuilder(`
		SELECT e.id, e.employee_code, e.name, d.name,
			SUM(a.overtime_hours)::float8, COUNT(a.id), ROUND(AVG(a.overtime_hours), 2)::float8
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id`, f)
	query, args := b.WhereRaw("a.overtime_hours > 0").
		Suffix("GROUP BY e.id, e.employee_code, e.name, d.name").
		Suffix("HAVING SUM(a.overtime_hours) > 0").
		Suffix("ORDER BY SUM(a.overtime_hours) DESC, e.name ASC").
		Build()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime by employee report: %w", err)
	}

	return collect(rows, func(rows pgx.Rows) (attendance.OvertimeByEmployeeRow, error) {
		var row attendance.OvertimeByEmployeeRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeCode, &row.Name, &row.DepartmentName,
			&row.TotalOvertime, &row.OvertimeDays, &row.AvgOvertime,
		)
		return row, err
	})
}

// PeriodTotals implements attendance.ReportRepository.
func (r *reportRepositoryImpl) PeriodTotals(ctx context.Context, f attendance.PeriodFilter, threshold string) (attendance.PeriodTotals, error) {
	q := GetQuerier(ctx, r.db)

	query, args := periodBuilder(`
		SELECT COUNT(a.id) FILTER (WHERE a.clock_in > $1::time),
			COALESCE(SUM(a.overtime_hours), 0)::float8,
			COALESCE(ROUND(AVG(a.hours_worked) FILTER (WHERE a.hours_worked > 0), 2), 0)::float8
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id`, f, threshold).
		Build()

	var totals attendance.PeriodTotals
	err := q.QueryRow(ctx, query, args...).Scan(&totals.LateArrivals, &totals.TotalOvertimeHours, &totals.AvgHoursWorked)
	if err != nil {
		return attendance.PeriodTotals{}, fmt.Errorf("failed to get period totals: %w", err)
	}
	return totals, nil
}

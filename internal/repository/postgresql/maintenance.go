package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type maintenanceRepositoryImpl struct {
	db *database.DB
}

func NewMaintenanceRepository(db *database.DB) attendance.MaintenanceRepository {
	return &maintenanceRepositoryImpl{db: db}
}

// MarkAbsent implements attendance.MaintenanceRepository.
func (r *maintenanceRepositoryImpl) MarkAbsent(ctx context.Context, day time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, status, is_weekend, is_holiday, notes)
		SELECT e.id, $1::date, 'absent', FALSE, FALSE, 'marked absent'
		FROM employees e
		WHERE e.status = 'active'
			AND (e.hire_date IS NULL OR e.hire_date <= $1::date)
			AND NOT ` + isHolidaySQL("$1") + `
			AND NOT EXISTS (
				SELECT 1 FROM leaves l
				WHERE l.employee_id = e.id AND l.status = 'approved'
					AND $1::date BETWEEN l.start_date AND l.end_date
			)
		ON CONFLICT (employee_id, date) DO NOTHING`

	tag, err := q.Exec(ctx, query, day)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absences: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CloseOpenSessions implements attendance.MaintenanceRepository.
func (r *maintenanceRepositoryImpl) CloseOpenSessions(ctx context.Context, before time.Time, standardHours decimal.Decimal) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH closing AS (
			SELECT a.id, a.clock_in,
				CASE WHEN ws.end_time > a.clock_in THEN ws.end_time
					ELSE LEAST(a.clock_in::interval + $2::float8 * INTERVAL '1 hour', INTERVAL '23:59:59')::time
				END AS clock_out
			FROM attendance a
			LEFT JOIN work_schedules ws
				ON ws.employee_id = a.employee_id AND ws.day_of_week = EXTRACT(DOW FROM a.date)
			WHERE a.date < $1::date AND a.clock_in IS NOT NULL AND a.clock_out IS NULL
		), worked AS (
			SELECT id, clock_out,
				ROUND((EXTRACT(EPOCH FROM (clock_out - clock_in)) / 3600)::numeric, 2) AS hours
			FROM closing
		)
		UPDATE attendance a
		SET clock_out = w.clock_out,
			hours_worked = w.hours,
			overtime_hours = GREATEST(w.hours - $3::numeric, 0),
			notes = COALESCE(a.notes, 'auto closed')
		FROM worked w
		WHERE a.id = w.id`

	tag, err := q.Exec(ctx, query, before, standardHours.InexactFloat64(), standardHours)
	if err != nil {
		return 0, fmt.Errorf("failed to close open sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

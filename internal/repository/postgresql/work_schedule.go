package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/schedule"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/querybuilder"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// List implements schedule.WorkScheduleRepository.
func (w *workScheduleRepositoryImpl) List(ctx context.Context, employeeID int64) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query, args := querybuilder.New(`
		SELECT ws.id, ws.employee_id, ws.day_of_week,
			to_char(ws.start_time, 'HH24:MI:SS'), to_char(ws.end_time, 'HH24:MI:SS'), e.name
		FROM work_schedules ws
		JOIN employees e ON e.id = ws.employee_id`).
		WhereRaw("e.status = 'active'").
		Where(querybuilder.Eq("ws.employee_id", employeeID, employeeID > 0)).
		Suffix("ORDER BY e.name ASC, ws.employee_id ASC, ws.day_of_week ASC").
		Build()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get work schedules: %w", err)
	}
	defer rows.Close()

	schedules := []schedule.WorkSchedule{}
	for rows.Next() {
		var (
			ws  schedule.WorkSchedule
			day int16
		)
		if err := rows.Scan(&ws.ID, &ws.EmployeeID, &day, &ws.StartTime, &ws.EndTime, &ws.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		ws.DayOfWeek = time.Weekday(day)
		schedules = append(schedules, ws)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return schedules, nil
}

package postgresql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/holiday"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/querybuilder"
)

// holidayMatchSQL is true when holiday h falls on attendance day a.date.
const holidayMatchSQL = `((h.is_recurring AND to_char(h.date, 'MM-DD') = to_char(a.date, 'MM-DD'))
		OR (NOT h.is_recurring AND h.date = a.date))`

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// holidayListQuery selects the holidays that fall in year. Recurring
// holidays apply to every year from the one they are stored under.
func holidayListQuery(year string) (string, []interface{}) {
	b := querybuilder.New(`SELECT id, name, date, is_recurring FROM holidays`)
	if year == "" {
		return b.Suffix("ORDER BY date ASC, id ASC").Build()
	}

	y, _ := strconv.Atoi(year)
	return b.WhereRaw("(EXTRACT(YEAR FROM date) = ? OR (is_recurring AND EXTRACT(YEAR FROM date) <= ?))", y, y).
		Suffix("ORDER BY to_char(date, 'MM-DD') ASC, id ASC").
		Build()
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, year string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query, args := holidayListQuery(year)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays: %w", err)
	}
	defer rows.Close()

	holidays := []holiday.Holiday{}
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.IsRecurring); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return holidays, nil
}

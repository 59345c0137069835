package holiday

import "time"

type Holiday struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"-"`
	IsRecurring bool      `json:"is_recurring"`
}

// Matches reports whether the holiday falls on day. Recurring holidays match
// the same month and day of any year.
func (h Holiday) Matches(day time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == day.Month() && h.Date.Day() == day.Day()
	}
	return h.Date.Year() == day.Year() && h.Date.YearDay() == day.YearDay()
}

package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusWeekend Status = "weekend"
)

var validStatuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusHalfDay), string(StatusWeekend)}

// Attendance is one employee's record for one calendar day. Clock times are
// wall clock values formatted HH:MM:SS.
type Attendance struct {
	ID            int64
	EmployeeID    int64
	Date          time.Time
	ClockIn       *string
	ClockOut      *string
	Status        Status
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
	IsWeekend     bool
	IsHoliday     bool
	Notes         *string
	CreatedAt     time.Time
}

// CalendarDay returns the date t falls on in its own location, as midnight
// UTC. Record dates and the nightly jobs both derive "today" through it.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekendDay reports whether d is a Saturday or Sunday.
func IsWeekendDay(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Punctuality string

const (
	PunctualityOnTime Punctuality = "On Time"
	PunctualityLate   Punctuality = "Late"
	PunctualityAbsent Punctuality = "Absent"
)

// Policy holds the rules used to classify records. A clock-in strictly after
// LateThreshold is late; hours beyond StandardHours are overtime.
type Policy struct {
	LateThreshold time.Duration
	StandardHours decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		LateThreshold: 9 * time.Hour,
		StandardHours: decimal.NewFromInt(8),
	}
}

func NewPolicy(lateThreshold string, standardHours float64) (Policy, error) {
	threshold, err := ParseTimeOfDay(lateThreshold)
	if err != nil {
		return Policy{}, fmt.Errorf("late threshold: %w", err)
	}
	if standardHours <= 0 {
		return Policy{}, fmt.Errorf("standard hours must be positive, got %v", standardHours)
	}
	return Policy{
		LateThreshold: threshold,
		StandardHours: decimal.NewFromFloat(standardHours),
	}, nil
}

// ParseTimeOfDay converts HH:MM or HH:MM:SS into an offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidClockTime
	}
	limits := []int{23, 59, 59}
	var total time.Duration
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	for i, p := range parts {
		if len(p) != 2 {
			return 0, ErrInvalidClockTime
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, ErrInvalidClockTime
		}
		total += time.Duration(n) * units[i]
	}
	return total, nil
}

// FormatTimeOfDay renders an offset from midnight as HH:MM:SS.
func FormatTimeOfDay(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// IsLate reports whether clockIn is strictly after the threshold. Unparsable
// values are never late.
func (p Policy) IsLate(clockIn string) bool {
	t, err := ParseTimeOfDay(clockIn)
	if err != nil {
		return false
	}
	return t > p.LateThreshold
}

// LateMinutes is the number of started minutes past the threshold, 0 when
// on time. 09:15:00 is 15 minutes late, 09:00:30 is 1.
func (p Policy) LateMinutes(clockIn string) int {
	t, err := ParseTimeOfDay(clockIn)
	if err != nil || t <= p.LateThreshold {
		return 0
	}
	diff := t - p.LateThreshold
	minutes := int(diff / time.Minute)
	if diff%time.Minute != 0 {
		minutes++
	}
	return minutes
}

// LateBy formats the lateness of clockIn as "<n> min", or "-" when there is
// no clock-in or it is on time.
func (p Policy) LateBy(clockIn *string) string {
	if clockIn == nil {
		return "-"
	}
	n := p.LateMinutes(*clockIn)
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d min", n)
}

// Punctuality labels a daily row. Rows without a clock-in are Absent only
// when explicitly recorded as absent.
func (p Policy) Punctuality(clockIn *string, status *Status) Punctuality {
	switch {
	case clockIn != nil && p.IsLate(*clockIn):
		return PunctualityLate
	case clockIn == nil && status != nil && *status == StatusAbsent:
		return PunctualityAbsent
	default:
		return PunctualityOnTime
	}
}

// Overtime returns max(0, hours - StandardHours).
func (p Policy) Overtime(hours decimal.Decimal) decimal.Decimal {
	ot := hours.Sub(p.StandardHours)
	if ot.IsNegative() {
		return decimal.Zero
	}
	return ot
}

// HoursBetween returns the hours from clockIn to clockOut rounded to two
// decimals. A clock-out before the clock-in crosses midnight.
func HoursBetween(clockIn, clockOut time.Duration) decimal.Decimal {
	d := clockOut - clockIn
	if d < 0 {
		d += 24 * time.Hour
	}
	return decimal.NewFromInt(int64(d / time.Second)).Div(decimal.NewFromInt(3600)).Round(2)
}

package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"09:00:00", 9 * time.Hour, false},
		{"09:15", 9*time.Hour + 15*time.Minute, false},
		{"23:59:59", 24*time.Hour - time.Second, false},
		{"24:00:00", 0, true},
		{"9:00", 0, true},
		{"09:00:00:00", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidClockTime, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "09:05:07", FormatTimeOfDay(9*time.Hour+5*time.Minute+7*time.Second))
	assert.Equal(t, "00:00:00", FormatTimeOfDay(0))
}

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy("09:30", 7.5)
	require.NoError(t, err)
	assert.Equal(t, 9*time.Hour+30*time.Minute, p.LateThreshold)
	assert.True(t, p.StandardHours.Equal(decimal.NewFromFloat(7.5)))

	_, err = NewPolicy("late", 8)
	assert.Error(t, err)
	_, err = NewPolicy("09:00", 0)
	assert.Error(t, err)
}

func TestLateMinutesAndLateBy(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		clockIn string
		minutes int
		lateBy  string
	}{
		{"08:59:59", 0, "-"},
		{"09:00:00", 0, "-"},
		{"09:00:30", 1, "1 min"},
		{"09:15:00", 15, "15 min"},
		{"10:01:00", 61, "61 min"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.minutes, p.LateMinutes(tt.clockIn), tt.clockIn)
		assert.Equal(t, tt.lateBy, p.LateBy(ptr(tt.clockIn)), tt.clockIn)
		assert.Equal(t, tt.minutes > 0, p.IsLate(tt.clockIn), tt.clockIn)
	}

	assert.Equal(t, "-", p.LateBy(nil))
}

func TestLateMinutes_PositiveIffLate(t *testing.T) {
	p := DefaultPolicy()
	for s := 8 * time.Hour; s < 10*time.Hour; s += 17 * time.Second {
		clock := FormatTimeOfDay(s)
		assert.Equal(t, s > 9*time.Hour, p.LateMinutes(clock) > 0, clock)
	}
}

func TestPunctuality(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, PunctualityLate, p.Punctuality(ptr("09:15:00"), ptr(StatusPresent)))
	assert.Equal(t, PunctualityOnTime, p.Punctuality(ptr("09:00:00"), ptr(StatusPresent)))
	assert.Equal(t, PunctualityOnTime, p.Punctuality(ptr("08:12:00"), ptr(StatusPresent)))
	assert.Equal(t, PunctualityAbsent, p.Punctuality(nil, ptr(StatusAbsent)))
	assert.Equal(t, PunctualityOnTime, p.Punctuality(nil, ptr(StatusWeekend)))
	assert.Equal(t, PunctualityOnTime, p.Punctuality(nil, nil), "no record at all")
}

func TestOvertime(t *testing.T) {
	p := DefaultPolicy()

	assert.True(t, p.Overtime(decimal.RequireFromString("8.25")).Equal(decimal.RequireFromString("0.25")))
	assert.True(t, p.Overtime(decimal.RequireFromString("8")).IsZero())
	assert.True(t, p.Overtime(decimal.RequireFromString("4")).IsZero())
}

func TestHoursBetween(t *testing.T) {
	in := 9 * time.Hour
	assert.Equal(t, "8.25", HoursBetween(in, in+8*time.Hour+15*time.Minute).String())
	assert.Equal(t, "4", HoursBetween(in, 13*time.Hour).String())
	assert.Equal(t, "0.33", HoursBetween(in, in+20*time.Minute).String())
	assert.Equal(t, "3", HoursBetween(22*time.Hour, time.Hour).String(), "crosses midnight")
}

package fixtures

import (
	"fmt"
	"testing"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		now   time.Time
		start string
		end   string
	}{
		{time.Date(2025, 7, 21, 15, 0, 0, 0, time.UTC), "2025-05-01", "2025-08-31"},
		{time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "2024-11-01", "2025-02-28"},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "2025-10-01", "2026-01-31"},
		{time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "2023-11-01", "2024-02-29"},
	}
	for _, tt := range tests {
		start, end := Window(tt.now)
		assert.Equal(t, tt.start, start.Format("2006-01-02"), tt.now)
		assert.Equal(t, tt.end, end.Format("2006-01-02"), tt.now)
	}
}

func TestAttendance_OneRowPerEmployeeDay(t *testing.T) {
	g := NewGenerator(42, attendance.DefaultPolicy())
	start, end := Window(time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC))
	ids := []int64{1, 2, 3}

	rows := g.Attendance(ids, start, end)

	days := int(end.Sub(start).Hours()/24) + 1
	require.Len(t, rows, days*len(ids))

	seen := make(map[string]bool)
	for _, r := range rows {
		key := fmt.Sprintf("%s/%d", r.Date.Format("2006-01-02"), r.EmployeeID)
		assert.False(t, seen[key], "duplicate row %s", key)
		seen[key] = true
	}
}

func TestAttendance_Invariants(t *testing.T) {
	g := NewGenerator(7, attendance.DefaultPolicy())
	start, end := Window(time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC))
	eight := decimal.NewFromInt(8)

	for _, r := range g.Attendance([]int64{1, 2, 3, 4, 5, 6, 7, 8}, start, end) {
		assert.Equal(t, attendance.IsWeekendDay(r.Date), r.IsWeekend)

		want := r.HoursWorked.Sub(eight)
		if want.IsNegative() {
			want = decimal.Zero
		}
		assert.True(t, r.OvertimeHours.Equal(want), "overtime %s for hours %s", r.OvertimeHours, r.HoursWorked)
		assert.True(t, r.HoursWorked.Equal(r.HoursWorked.Round(2)))

		switch r.Status {
		case attendance.StatusWeekend:
			assert.True(t, r.IsWeekend)
			assert.Nil(t, r.ClockIn)
			assert.True(t, r.HoursWorked.IsZero())
		case attendance.StatusAbsent:
			assert.False(t, r.IsWeekend)
			assert.Nil(t, r.ClockIn)
			assert.Nil(t, r.ClockOut)
		case attendance.StatusHalfDay:
			assert.Equal(t, "09:00:00", *r.ClockIn)
			assert.Equal(t, "13:00:00", *r.ClockOut)
			assert.Equal(t, "4", r.HoursWorked.String())
		case attendance.StatusPresent:
			require.NotNil(t, r.ClockIn)
			require.NotNil(t, r.ClockOut)
			if r.IsWeekend {
				assert.Equal(t, "09:00:00", *r.ClockIn)
				assert.Equal(t, "4", r.HoursWorked.String())
				continue
			}
			in, err := attendance.ParseTimeOfDay(*r.ClockIn)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, in, 8*time.Hour)
			assert.Less(t, in, 9*time.Hour+30*time.Minute)
			assert.True(t, r.HoursWorked.GreaterThanOrEqual(eight))
			assert.True(t, r.HoursWorked.LessThanOrEqual(decimal.NewFromInt(9)))
		default:
			t.Fatalf("unexpected status %q", r.Status)
		}
	}
}

func TestAttendance_DeterministicForSeed(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	a := NewGenerator(99, attendance.DefaultPolicy()).Attendance([]int64{1, 2}, start, end)
	b := NewGenerator(99, attendance.DefaultPolicy()).Attendance([]int64{1, 2}, start, end)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Status, b[i].Status)
		assert.Equal(t, a[i].ClockIn, b[i].ClockIn)
		assert.True(t, a[i].HoursWorked.Equal(b[i].HoursWorked))
	}
}

func TestLeaves(t *testing.T) {
	g := NewGenerator(3, attendance.DefaultPolicy())
	start, end := Window(time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC))

	leaves := g.Leaves([]int64{1, 2, 3, 4, 5, 6, 7, 8}, start, end)

	perEmployee := make(map[int64]int)
	for _, l := range leaves {
		perEmployee[l.EmployeeID]++
		assert.False(t, l.StartDate.Before(start))
		assert.False(t, l.StartDate.After(end))
		assert.GreaterOrEqual(t, l.Days(), 1)
		assert.LessOrEqual(t, l.Days(), 5)
		assert.Equal(t, l.LeaveType != leave.LeaveTypeSick, l.IsPaid)
		assert.Equal(t, leave.LeaveStatusApproved, l.Status)
		assert.Equal(t, string(l.LeaveType)+" leave", *l.Reason)
	}
	require.Len(t, perEmployee, 8)
	for id, n := range perEmployee {
		assert.GreaterOrEqual(t, n, 1, id)
		assert.LessOrEqual(t, n, 3, id)
	}
}

func TestReferenceData(t *testing.T) {
	require.Len(t, Departments, 7)
	assert.Equal(t, "All Members", Departments[0].Name)
	assert.Len(t, Employees, 8)
	assert.Len(t, Holidays, 5)

	emails := make(map[string]bool)
	for _, e := range Employees {
		assert.False(t, emails[e.Email], "duplicate email %s", e.Email)
		emails[e.Email] = true
		assert.Greater(t, *e.DepartmentID, int64(1), "no employee belongs to the sentinel")
	}

	week := WorkWeek(5)
	require.Len(t, week, 5)
	assert.Equal(t, time.Monday, week[0].DayOfWeek)
	assert.Equal(t, time.Friday, week[4].DayOfWeek)
}

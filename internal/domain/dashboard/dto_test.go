package dashboard

import (
	"testing"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	rows := []attendance.MonthlySummaryRow{
		{Name: "Emily Davis", PresentDays: 18, AbsentDays: 1, HalfDays: 2, TotalRecords: 31},
		{Name: "John Doe", PresentDays: 20, AbsentDays: 0, HalfDays: 1, TotalRecords: 31},
		{Name: "New Hire", TotalRecords: 0},
	}

	s := Fold(rows)

	assert.Equal(t, 38, s.TotalPresent)
	assert.Equal(t, 1, s.TotalAbsent)
	assert.Equal(t, 3, s.TotalHalfDays)
	assert.Equal(t, 1, s.EmployeesWithoutRecords)
	// 100 * (38 + 1.5) / 42
	assert.InDelta(t, 94.05, s.AverageAttendance, 0.001)
}

func TestFold_EmptyIsZero(t *testing.T) {
	s := Fold(nil)
	assert.Equal(t, 0.0, s.AverageAttendance)

	s = Fold([]attendance.MonthlySummaryRow{{Name: "Only Weekends", TotalRecords: 8}})
	assert.Equal(t, 0.0, s.AverageAttendance)
}

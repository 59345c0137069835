package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/fixtures"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/brilliantafrica/attendance-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReference(t *testing.T, db *database.DB) []int64 {
	t.Helper()
	ctx := context.Background()
	repo := postgresql.NewSeedRepository(db)

	require.NoError(t, repo.InsertDepartments(ctx, fixtures.Departments))
	require.NoError(t, repo.InsertHolidays(ctx, fixtures.Holidays))
	ids, err := repo.InsertEmployees(ctx, fixtures.Employees)
	require.NoError(t, err)
	return ids
}

func TestEmployeeRepository(t *testing.T) {
	db := newTestDB(t)
	ids := seedReference(t, db)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	require.NotNil(t, got.DepartmentName)
	assert.Equal(t, "IT Department", *got.DepartmentName)

	dept := int64(3)
	_, err = repo.Create(ctx, employee.Employee{Name: "Dup", Email: got.Email, DepartmentID: &dept, Status: employee.StatusActive})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	missing := int64(99)
	_, err = repo.Create(ctx, employee.Employee{Name: "Lost", Email: "lost@example.com", DepartmentID: &missing, Status: employee.StatusActive})
	assert.ErrorIs(t, err, employee.ErrDepartmentNotFound)

	require.NoError(t, repo.UpdateStatus(ctx, ids[0], employee.StatusInactive))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, 9999, employee.StatusInactive), employee.ErrEmployeeNotFound)

	active, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, active, len(ids)-1)

	all, err := repo.List(ctx, employee.EmployeeFilter{Status: employee.StatusAll})
	require.NoError(t, err)
	assert.Len(t, all, len(ids))

	found, err := repo.List(ctx, employee.EmployeeFilter{Search: "EMP002"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Mary Smith", found[0].Name)
}

func TestAttendanceAndReports(t *testing.T) {
	db := newTestDB(t)
	ids := seedReference(t, db)
	ctx := context.Background()
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reports := postgresql.NewReportRepository(db)

	day := time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)
	in := "09:15:00"
	saved, err := attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID:    ids[0],
		Date:          day,
		ClockIn:       &in,
		Status:        attendance.StatusPresent,
		HoursWorked:   decimal.RequireFromString("8.25"),
		OvertimeHours: decimal.RequireFromString("0.25"),
	})
	require.NoError(t, err)
	require.NotNil(t, saved.ClockIn)
	assert.Equal(t, "09:15:00", *saved.ClockIn)
	assert.True(t, saved.HoursWorked.Equal(decimal.RequireFromString("8.25")))

	t.Run("daily includes employees without records", func(t *testing.T) {
		rows, err := reports.Daily(ctx, day, 0)
		require.NoError(t, err)
		assert.Len(t, rows, len(ids))
		var withRecord int
		for _, r := range rows {
			if r.ClockIn != nil {
				withRecord++
				assert.Equal(t, ids[0], r.EmployeeID)
				assert.Equal(t, "2025-07-21", r.Date)
			}
		}
		assert.Equal(t, 1, withRecord)
	})

	t.Run("late clock-ins for the month", func(t *testing.T) {
		july := attendance.PeriodFilter{From: day.AddDate(0, 0, -20), To: day.AddDate(0, 0, 11)}
		rows, err := reports.LateClockIns(ctx, july, "09:00:00")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "09:15:00", *rows[0].ClockIn)

		rows, err = reports.LateClockIns(ctx, july, "09:30:00")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("monthly summary guards empty employees", func(t *testing.T) {
		july := attendance.PeriodFilter{From: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)}
		rows, err := reports.MonthlySummary(ctx, july)
		require.NoError(t, err)
		require.Len(t, rows, len(ids))
		for _, r := range rows {
			if r.EmployeeID == ids[0] {
				assert.Equal(t, 1, r.PresentDays)
				assert.Equal(t, 100.0, r.AttendancePercent)
				continue
			}
			assert.Zero(t, r.TotalRecords)
			assert.Zero(t, r.AttendancePercent)
		}

		ot, err := reports.Overtime(ctx, july)
		require.NoError(t, err)
		require.Len(t, ot, 1)
		assert.Equal(t, 8.0, ot[0].RegularHours)
		assert.Equal(t, 8.25, ot[0].TotalHours)
	})

	t.Run("clock in twice", func(t *testing.T) {
		now := "08:55:00"
		today := time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC)
		a := attendance.Attendance{EmployeeID: ids[1], Date: today, ClockIn: &now, Status: attendance.StatusPresent}
		_, err := attendanceRepo.ClockIn(ctx, a)
		require.NoError(t, err)
		_, err = attendanceRepo.ClockIn(ctx, a)
		assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	})

	t.Run("holiday flag", func(t *testing.T) {
		christmas := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
		saved, err := attendanceRepo.Upsert(ctx, attendance.Attendance{EmployeeID: ids[2], Date: christmas, Status: attendance.StatusAbsent})
		require.NoError(t, err)
		assert.True(t, saved.IsHoliday)
	})
}

package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs closes forgotten sessions and records absences for the
// previous day. Both jobs only act during RunHour of the server's local
// time so an hourly interval runs them once a day.
type AttendanceJobs struct {
	repo    attendance.MaintenanceRepository
	policy  attendance.Policy
	RunHour int
	now     func() time.Time
}

func NewAttendanceJobs(repo attendance.MaintenanceRepository, policy attendance.Policy, runHour int) *AttendanceJobs {
	return &AttendanceJobs{
		repo:    repo,
		policy:  policy,
		RunHour: runHour,
		now:     time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_open_attendance", time.Hour, j.CloseOpenSessions)
	scheduler.AddJob("mark_absent_employees", time.Hour, j.MarkAbsentEmployees)
}

// today reads the clock in the same location clock-ins are recorded in.
func (j *AttendanceJobs) today() (time.Time, bool) {
	now := j.now()
	return attendance.CalendarDay(now), now.Hour() == j.RunHour
}

func (j *AttendanceJobs) CloseOpenSessions(ctx context.Context) error {
	today, due := j.today()
	if !due {
		return nil
	}

	n, err := j.repo.CloseOpenSessions(ctx, today, j.policy.StandardHours)
	if err != nil {
		return fmt.Errorf("close open sessions: %w", err)
	}
	slog.Info("cron: closed open attendance", "count", n, "before", today.Format(time.DateOnly))
	return nil
}

// MarkAbsentEmployees records absences for yesterday. Weekends are skipped.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	today, due := j.today()
	if !due {
		return nil
	}

	yesterday := today.AddDate(0, 0, -1)
	if attendance.IsWeekendDay(yesterday) {
		return nil
	}

	n, err := j.repo.MarkAbsent(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("mark absent: %w", err)
	}
	slog.Info("cron: marked absent employees", "count", n, "date", yesterday.Format(time.DateOnly))
	return nil
}

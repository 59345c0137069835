package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/schedule"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/seed"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
	"github.com/brilliantafrica/attendance-backend-go/internal/fixtures"
	"github.com/brilliantafrica/attendance-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type SeedServiceImpl struct {
	tx       postgresql.Transactor
	seedRepo seed.SeedRepository
	userRepo user.UserRepository
	policy   attendance.Policy
	cost     int
}

func NewSeedService(tx postgresql.Transactor, seedRepo seed.SeedRepository, userRepo user.UserRepository, policy attendance.Policy) seed.SeedService {
	return &SeedServiceImpl{
		tx:       tx,
		seedRepo: seedRepo,
		userRepo: userRepo,
		policy:   policy,
		cost:     bcrypt.DefaultCost,
	}
}

// Run implements seed.SeedService.
func (s *SeedServiceImpl) Run(ctx context.Context, opts seed.Options) (seed.Result, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	result := seed.Result{RandomSeed: opts.RandomSeed}
	if result.RandomSeed == 0 {
		result.RandomSeed = uint64(time.Now().UnixNano())
	}
	result.From, result.To = fixtures.Window(now)

	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if opts.Reset {
			if err := s.seedRepo.Reset(txCtx); err != nil {
				return err
			}
		} else {
			exists, err := s.seedRepo.HasData(txCtx)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped = true
				return nil
			}
		}

		return s.populate(txCtx, &result)
	})
	if err != nil {
		return seed.Result{}, fmt.Errorf("seed failed: %w", err)
	}

	if result.Skipped {
		slog.Info("Seed skipped, data already present")
	} else {
		slog.Info("Seed completed",
			"random_seed", result.RandomSeed,
			"from", result.From.Format("2006-01-02"),
			"to", result.To.Format("2006-01-02"),
			"employees", result.Employees,
			"attendance_rows", result.AttendanceRows,
			"leave_rows", result.LeaveRows,
		)
	}
	return result, nil
}

func (s *SeedServiceImpl) populate(ctx context.Context, result *seed.Result) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(fixtures.AdminPassword), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := fixtures.AdminUser
	admin.PasswordHash = string(hash)
	if _, err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if err := s.seedRepo.InsertDepartments(ctx, fixtures.Departments); err != nil {
		return err
	}
	result.Departments = len(fixtures.Departments)

	if err := s.seedRepo.InsertHolidays(ctx, fixtures.Holidays); err != nil {
		return err
	}
	result.Holidays = len(fixtures.Holidays)

	ids, err := s.seedRepo.InsertEmployees(ctx, fixtures.Employees)
	if err != nil {
		return err
	}
	result.Employees = len(ids)

	var schedules []schedule.WorkSchedule
	for _, id := range ids {
		schedules = append(schedules, fixtures.WorkWeek(id)...)
	}
	n, err := s.seedRepo.CopyWorkSchedules(ctx, schedules)
	if err != nil {
		return err
	}
	result.WorkSchedules = int(n)

	gen := fixtures.NewGenerator(result.RandomSeed, s.policy)
	if result.AttendanceRows, err = s.seedRepo.CopyAttendance(ctx, gen.Attendance(ids, result.From, result.To)); err != nil {
		return err
	}
	if result.LeaveRows, err = s.seedRepo.CopyLeaves(ctx, gen.Leaves(ids, result.From, result.To)); err != nil {
		return err
	}
	if result.HolidayRows, err = s.seedRepo.FlagHolidays(ctx); err != nil {
		return err
	}
	return nil
}

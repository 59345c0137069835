package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/config"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/seed"
	"github.com/brilliantafrica/attendance-backend-go/internal/logger"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/brilliantafrica/attendance-backend-go/internal/repository/postgresql"
	seedService "github.com/brilliantafrica/attendance-backend-go/internal/service/seed"
)

func main() {
	reset := flag.Bool("reset", false, "empty every table before seeding")
	randomSeed := flag.Uint64("seed", 0, "random seed for generated attendance (0 picks one)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	appLogger := logger.New(cfg.Log, cfg.App)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Error applying schema: ", err)
	}

	policy, err := attendance.NewPolicy(cfg.Attendance.LateThreshold, cfg.Attendance.StandardHours)
	if err != nil {
		log.Fatal(err)
	}

	svc := seedService.NewSeedService(
		postgresql.NewTransactor(db),
		postgresql.NewSeedRepository(db),
		postgresql.NewUserRepository(db),
		policy,
	)

	result, err := svc.Run(ctx, seed.Options{Reset: *reset, RandomSeed: *randomSeed})
	if err != nil {
		log.Fatal("Seed failed: ", err)
	}
	if result.Skipped {
		appLogger.Info("database already has data, nothing to do (use -reset to reseed)")
		return
	}

	appLogger.Info("=== seed done ===",
		"random_seed", result.RandomSeed,
		"from", result.From.Format("2006-01-02"),
		"to", result.To.Format("2006-01-02"),
		"employees", result.Employees,
		"attendance_rows", result.AttendanceRows,
		"leave_rows", result.LeaveRows,
		"holiday_rows", result.HolidayRows,
	)
}

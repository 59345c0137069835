package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/config"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/seed"
	appHTTP "github.com/brilliantafrica/attendance-backend-go/internal/handler/http"
	"github.com/brilliantafrica/attendance-backend-go/internal/logger"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/cron"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/jwt"
	"github.com/brilliantafrica/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/brilliantafrica/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/brilliantafrica/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/brilliantafrica/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/brilliantafrica/attendance-backend-go/internal/service/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/service/leave"
	"github.com/brilliantafrica/attendance-backend-go/internal/service/master"
	seedService "github.com/brilliantafrica/attendance-backend-go/internal/service/seed"
	"github.com/brilliantafrica/attendance-backend-go/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	appLogger := logger.New(cfg.Log, cfg.App)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) error {
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	policy, err := attendance.NewPolicy(cfg.Attendance.LateThreshold, cfg.Attendance.StandardHours)
	if err != nil {
		return err
	}

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	seedRepo := postgresql.NewSeedRepository(db)
	maintenanceRepo := postgresql.NewMaintenanceRepository(db)

	if cfg.Seed.OnStart {
		result, err := seedService.NewSeedService(tx, seedRepo, userRepo, policy).Run(ctx, seed.Options{
			Reset:      cfg.Seed.Reset,
			RandomSeed: cfg.Seed.RandomSeed,
		})
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		appLogger.Info("seed finished", "skipped", result.Skipped, "attendance_rows", result.AttendanceRows)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(tx, employeeRepo)
	masterService := master.NewMasterService(departmentRepo, holidayRepo, workScheduleRepo)
	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, employeeRepo, policy)
	reportSvc := attendanceService.NewReportService(reportRepo, policy)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, reportRepo, policy)
	leaveService := leave.NewLeaveService(tx, leaveRepo)

	if cfg.Jobs.Enabled {
		scheduler := cron.NewScheduler(appLogger)
		cron.NewAttendanceJobs(maintenanceRepo, policy, cfg.Jobs.RunHour).RegisterJobs(scheduler)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	static, err := web.Static()
	if err != nil {
		return err
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         appLogger,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Static:         static,
			Health:         appHTTP.NewHealthHandler(db, cfg.App.Version),
		},
		JWTService,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewMasterHandler(masterService),
		appHTTP.NewAttendanceHandler(attendanceSvc, reportSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewLeaveHandler(leaveService),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", "addr", fmt.Sprintf("http://localhost%s", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		appLogger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

package http

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/brilliantafrica/attendance-backend-go/internal/handler/http/middleware"
	"github.com/brilliantafrica/attendance-backend-go/internal/handler/http/response"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the non-handler pieces of the router.
type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// Static serves the dashboard under "/" when set.
	Static fs.FS
	Health http.HandlerFunc
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	if opts.Health != nil {
		r.Get("/health", opts.Health)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/auth/profile", authHandler.Profile)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			})

			r.Get("/departments", masterHandler.ListDepartments)
			r.Get("/departments/{id}", masterHandler.GetDepartment)
			r.Get("/holidays", masterHandler.ListHolidays)
			r.Get("/work-schedules", masterHandler.ListWorkSchedules)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/daily", attendanceHandler.Daily)
				r.Get("/monthly", attendanceHandler.Monthly)
				r.Get("/monthly-inout", attendanceHandler.MonthlyInOut)
				r.Get("/late-clockin", attendanceHandler.LateClockIns)
				r.Get("/overtime", attendanceHandler.Overtime)
				r.Get("/overtime/by-employee", attendanceHandler.OvertimeByEmployee)
				r.Get("/summary", dashboardHandler.GetSummary)
				r.Get("/export/{type}", attendanceHandler.Export)

				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)

				r.With(middleware.AdminOnly).Post("/", attendanceHandler.Record)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.ListLeaves)
				r.Post("/", leaveHandler.ApplyLeave)
				r.With(middleware.AdminOnly).Put("/{id}/approve", leaveHandler.ApproveLeave)
			})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			response.NotFound(w, "Endpoint not found")
		})
	})

	if opts.Static != nil {
		r.Handle("/*", http.FileServerFS(opts.Static))
	}

	return r
}

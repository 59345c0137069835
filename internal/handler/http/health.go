package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/handler/http/response"
)

// Pinger is satisfied by the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler reports liveness with the database state. An unreachable
// database still answers 200 so the process is not restarted for it.
func NewHealthHandler(db Pinger, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := HealthStatus{
			Status:    "ok",
			Version:   version,
			Database:  "up",
			Timestamp: time.Now().UTC(),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if db == nil {
			status.Database = "unknown"
		} else if err := db.Ping(ctx); err != nil {
			slog.Warn("health check database ping failed", "error", err)
			status.Status = "degraded"
			status.Database = "down"
		}

		response.SuccessWithMessage(w, "Attendance API is running", status)
	}
}

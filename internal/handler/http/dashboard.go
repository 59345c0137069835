package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/dashboard"
	"github.com/brilliantafrica/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetSummary returns the month totals shown above the report tables
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	now              func() time.Time
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService, now: time.Now}
}

// GetSummary handles GET /api/attendance/summary. Without month and year it
// summarizes the current month.
func (h *dashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Month == "" && req.Year == "" {
		now := h.now()
		req.Month = fmt.Sprintf("%02d", int(now.Month()))
		req.Year = fmt.Sprintf("%d", now.Year())
	}

	result, err := h.dashboardService.GetSummary(r.Context(), req)
	if err != nil {
		slog.Error("Dashboard summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

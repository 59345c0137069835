package dashboard

import (
	"context"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSummary folds the monthly report and period counters into one response
	GetSummary(ctx context.Context, req attendance.MonthlyReportRequest) (SummaryResponse, error)
}

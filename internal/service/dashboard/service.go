package dashboard

import (
	"context"
	"fmt"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	reportRepo attendance.ReportRepository
	policy     attendance.Policy
}

func NewDashboardService(repo dashboard.DashboardRepository, reportRepo attendance.ReportRepository, policy attendance.Policy) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		reportRepo:          reportRepo,
		policy:              policy,
	}
}

// GetSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, req attendance.MonthlyReportRequest) (dashboard.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.SummaryResponse{}, err
	}
	period := req.Period()
	threshold := attendance.FormatTimeOfDay(s.policy.LateThreshold)

	var (
		rows   []attendance.MonthlySummaryRow
		totals attendance.PeriodTotals
		counts dashboard.EmployeeCounts
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Per-employee monthly rows, folded below
	g.Go(func() error {
		var err error
		rows, err = s.reportRepo.MonthlySummary(gCtx, period)
		if err != nil {
			return fmt.Errorf("monthly summary: %w", err)
		}
		return nil
	})

	// 2. Late arrivals, overtime and average hours
	g.Go(func() error {
		var err error
		totals, err = s.reportRepo.PeriodTotals(gCtx, period, threshold)
		if err != nil {
			return fmt.Errorf("period totals: %w", err)
		}
		return nil
	})

	// 3. Headcount
	g.Go(func() error {
		var err error
		counts, err = s.GetEmployeeCounts(gCtx, req.DepartmentID)
		if err != nil {
			return fmt.Errorf("employee counts: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.SummaryResponse{}, err
	}

	summary := dashboard.Fold(rows)
	summary.Month = req.Month
	summary.Year = req.Year
	summary.TotalEmployees = counts.Total
	summary.ActiveEmployees = counts.Active
	summary.TotalLateArrivals = totals.LateArrivals
	summary.TotalOvertimeHours = totals.TotalOvertimeHours
	summary.AverageHoursWorked = totals.AvgHoursWorked
	return summary, nil
}

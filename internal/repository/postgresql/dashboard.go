package postgresql

import (
	"context"
	"fmt"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/dashboard"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/querybuilder"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetEmployeeCounts(ctx context.Context, departmentID int64) (dashboard.EmployeeCounts, error) {
	q := GetQuerier(ctx, r.db)

	query, args := querybuilder.New(`
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active')
		FROM employees`).
		Where(querybuilder.Eq("department_id", departmentID, departmentID > 1)).
		Build()

	var counts dashboard.EmployeeCounts
	if err := q.QueryRow(ctx, query, args...).Scan(&counts.Total, &counts.Active); err != nil {
		return dashboard.EmployeeCounts{}, fmt.Errorf("failed to count employees: %w", err)
	}
	return counts, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/database"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/querybuilder"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveSelect = `
	SELECT l.id, l.employee_id, l.start_date, l.end_date, l.leave_type, l.is_paid, l.reason, l.status,
		l.created_at, e.name, e.employee_code, d.name
	FROM leaves l
	JOIN employees e ON e.id = l.employee_id
	LEFT JOIN departments d ON d.id = e.department_id`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.LeaveType, &l.IsPaid, &l.Reason, &l.Status,
		&l.CreatedAt, &l.EmployeeName, &l.EmployeeCode, &l.DepartmentName,
	)
	return l, err
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	b := querybuilder.New(leaveSelect).
		Where(
			querybuilder.Eq("e.department_id", filter.DepartmentID, filter.DepartmentID > 1),
			querybuilder.Eq("l.employee_id", filter.EmployeeID, filter.EmployeeID > 0),
			querybuilder.Eq("l.status", filter.Status, filter.Status != ""),
		)
	if filter.HasMonth() {
		start, end := filter.MonthRange()
		b.WhereRaw("((l.start_date >= ? AND l.start_date < ?) OR (l.end_date >= ? AND l.end_date < ?))", start, end, start, end)
	}
	query, args := b.Suffix("ORDER BY l.start_date DESC, l.id DESC").Build()

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves := []leave.Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leaves, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, leaveSelect+`
	WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave with id %d: %w", id, err)
	}
	return l, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, start_date, end_date, leave_type, is_paid, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.StartDate, l.EndDate, l.LeaveType, l.IsPaid, l.Reason, l.Status,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return leave.Leave{}, employee.ErrEmployeeNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return r.GetByID(ctx, id)
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status leave.LeaveStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE leaves SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status for leave with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

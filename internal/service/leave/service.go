package leave

import (
	"context"
	"fmt"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
	"github.com/brilliantafrica/attendance-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	tx        postgresql.Transactor
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(tx postgresql.Transactor, leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:        tx,
		leaveRepo: leaveRepo,
	}
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, l.ToResponse())
	}
	return responses, nil
}

// ApplyLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return created.ToResponse(), nil
}

// ApproveLeave implements leave.LeaveService. Only pending leaves can be
// approved.
func (s *LeaveServiceImpl) ApproveLeave(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	if id <= 0 {
		return leave.LeaveResponse{}, validator.ValidationErrors{{Field: "id", Message: "id must be a positive integer"}}
	}

	var approved leave.Leave
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		current, err := s.leaveRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if current.Status != leave.LeaveStatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		if err := s.leaveRepo.UpdateStatus(txCtx, id, leave.LeaveStatusApproved); err != nil {
			return err
		}
		current.Status = leave.LeaveStatusApproved
		approved = current
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return approved.ToResponse(), nil
}

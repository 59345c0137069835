package leave

import "context"

type LeaveService interface {
	ListLeaves(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	ApproveLeave(ctx context.Context, id int64) (LeaveResponse, error)
}

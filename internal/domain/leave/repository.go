package leave

import "context"

type LeaveRepository interface {
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)
	GetByID(ctx context.Context, id int64) (Leave, error)
	Create(ctx context.Context, l Leave) (Leave, error)
	UpdateStatus(ctx context.Context, id int64, status LeaveStatus) error
}

package holiday

import "context"

type HolidayRepository interface {
	List(ctx context.Context, year string) ([]Holiday, error)
}

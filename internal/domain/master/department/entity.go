package department

import "time"

// AllMembersID is the sentinel department. Filtering by it, or by any id
// below it, means "no department filter".
const AllMembersID int64 = 1

type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsFilter reports whether id narrows a query to a single department.
func IsFilter(id int64) bool {
	return id > AllMembersID
}

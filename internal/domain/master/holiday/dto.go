package holiday

import (
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
)

type HolidayResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	IsRecurring bool   `json:"is_recurring"`
}

func (h Holiday) ToResponse() HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		IsRecurring: h.IsRecurring,
	}
}

// ListHolidaysRequest filters holidays by calendar year. Recurring holidays
// are listed for their stored year and every later one. An empty year lists
// every holiday.
type ListHolidaysRequest struct {
	Year string
}

func (r *ListHolidaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year != "" && !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "Invalid year format. Use YYYY.",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

package schedule

import "time"

// WorkSchedule is an employee's expected hours for one weekday.
type WorkSchedule struct {
	ID           int64
	EmployeeID   int64
	DayOfWeek    time.Weekday
	StartTime    string // HH:MM:SS
	EndTime      string // HH:MM:SS
	EmployeeName string
}

type WorkScheduleResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	DayOfWeek    int    `json:"day_of_week"`
	DayName      string `json:"day_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

func (w WorkSchedule) ToResponse() WorkScheduleResponse {
	return WorkScheduleResponse{
		ID:           w.ID,
		EmployeeID:   w.EmployeeID,
		EmployeeName: w.EmployeeName,
		DayOfWeek:    int(w.DayOfWeek),
		DayName:      w.DayOfWeek.String(),
		StartTime:    w.StartTime,
		EndTime:      w.EndTime,
	}
}

package attendance

// DailyRow is one active employee on one date, with nil attendance fields
// when no record exists.
type DailyRow struct {
	EmployeeID     int64       `json:"employee_id"`
	EmployeeCode   *string     `json:"employee_code"`
	Name           string      `json:"name"`
	DepartmentName *string     `json:"department_name"`
	Date           string      `json:"date"`
	ClockIn        *string     `json:"clock_in"`
	ClockOut       *string     `json:"clock_out"`
	Status         *Status     `json:"status"`
	HoursWorked    *float64    `json:"hours_worked"`
	OvertimeHours  *float64    `json:"overtime_hours"`
	Punctuality    Punctuality `json:"punctuality"`
}

// MonthlySummaryRow aggregates one employee over a month.
type MonthlySummaryRow struct {
	EmployeeID        int64   `json:"employee_id"`
	EmployeeCode      *string `json:"employee_code"`
	Name              string  `json:"name"`
	DepartmentName    *string `json:"department_name"`
	PresentDays       int     `json:"present_days"`
	AbsentDays        int     `json:"absent_days"`
	HalfDays          int     `json:"half_days"`
	WeekendWork       int     `json:"weekend_work"`
	TotalRecords      int     `json:"total_records"`
	AvgHours          float64 `json:"avg_hours"`
	TotalOvertime     float64 `json:"total_overtime"`
	AttendancePercent float64 `json:"attendance_percent"`
}

// InOutRow is a single clock-in/clock-out record within a month.
type InOutRow struct {
	EmployeeID     int64   `json:"employee_id"`
	Name           string  `json:"name"`
	DepartmentName *string `json:"department_name"`
	Date           string  `json:"date"`
	ClockIn        *string `json:"clock_in"`
	ClockOut       *string `json:"clock_out"`
	HoursWorked    float64 `json:"hours_worked"`
	Status         Status  `json:"status"`
}

// LateRow is a record whose clock-in is past the late threshold.
type LateRow struct {
	EmployeeID     int64    `json:"employee_id"`
	EmployeeCode   *string  `json:"employee_code"`
	Name           string   `json:"name"`
	DepartmentName *string  `json:"department_name"`
	Date           string   `json:"date"`
	ClockIn        *string  `json:"clock_in"`
	HoursWorked    *float64 `json:"hours_worked"`
	LateMinutes    int      `json:"late_minutes"`
	LateBy         string   `json:"late_by"`
}

// OvertimeRow is a single record with overtime.
type OvertimeRow struct {
	EmployeeID     int64   `json:"employee_id"`
	Name           string  `json:"employee_name"`
	DepartmentName *string `json:"department_name"`
	Date           string  `json:"date"`
	RegularHours   float64 `json:"regular_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	TotalHours     float64 `json:"total_hours"`
}

// OvertimeByEmployeeRow aggregates overtime for one employee over a month.
type OvertimeByEmployeeRow struct {
	EmployeeID     int64   `json:"employee_id"`
	EmployeeCode   *string `json:"employee_code"`
	Name           string  `json:"name"`
	DepartmentName *string `json:"department_name"`
	TotalOvertime  float64 `json:"total_overtime"`
	OvertimeDays   int     `json:"overtime_days"`
	AvgOvertime    float64 `json:"avg_overtime"`
}

// PeriodTotals are counters over every active employee's records in a period.
type PeriodTotals struct {
	LateArrivals       int     `json:"total_late_arrivals"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
	AvgHoursWorked     float64 `json:"avg_hours_worked"`
}

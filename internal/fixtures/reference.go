package fixtures

import (
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/department"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/holiday"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/schedule"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
)

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// AdminUser is the seeded administrator. AdminPassword is hashed before insert.
var AdminUser = user.User{
	Name:  "Fred Tuyishime",
	Email: "fred@gmail.com",
	Role:  user.RoleAdmin,
}

const AdminPassword = "123@"

// Departments are inserted with these ids. Id 1 is the "All Members" sentinel.
var Departments = []department.Department{
	{ID: department.AllMembersID, Name: "All Members", Description: strPtr("Every employee regardless of department")},
	{ID: 2, Name: "HR Department", Description: strPtr("Human Resources")},
	{ID: 3, Name: "IT Department", Description: strPtr("Information Technology")},
	{ID: 4, Name: "Marketing Department", Description: strPtr("Marketing and Communications")},
	{ID: 5, Name: "Finance Department", Description: strPtr("Finance and Accounting")},
	{ID: 6, Name: "Operations Department", Description: strPtr("Operations")},
	{ID: 7, Name: "Sales Department", Description: strPtr("Sales")},
}

func seededEmployee(code, name, email string, deptID int64, position, hireDate string) employee.Employee {
	hd := date(hireDate)
	return employee.Employee{
		EmployeeCode: strPtr(code),
		Name:         name,
		Email:        email,
		DepartmentID: int64Ptr(deptID),
		Position:     strPtr(position),
		HireDate:     &hd,
		Status:       employee.StatusActive,
	}
}

var Employees = []employee.Employee{
	seededEmployee("EMP001", "IT Supporter", "leo@brilliantafrica.com", 3, "IT Support Specialist", "2023-01-15"),
	seededEmployee("EMP002", "Mary Smith", "maryh@brilliantafrica.com", 2, "HR Manager", "2022-03-10"),
	seededEmployee("EMP003", "Fred Tuyishime", "fred@brilliantafrica.com", 4, "Marketing Coordinator", "2023-06-01"),
	seededEmployee("EMP004", "John Doe", "john@brilliantafrica.com", 5, "Finance Analyst", "2022-11-20"),
	seededEmployee("EMP005", "Sarah Johnson", "sarah@brilliantafrica.com", 6, "Operations Manager", "2023-02-14"),
	seededEmployee("EMP006", "Michael Brown", "michael@brilliantafrica.com", 7, "Sales Representative", "2023-04-05"),
	seededEmployee("EMP007", "Emily Davis", "emily@brilliantafrica.com", 3, "Software Developer", "2023-07-12"),
	seededEmployee("EMP008", "David Wilson", "david@brilliantafrica.com", 2, "HR Assistant", "2023-08-20"),
}

var Holidays = []holiday.Holiday{
	{Name: "New Year Day", Date: date("2025-01-01"), IsRecurring: true},
	{Name: "Genocide Memorial Day", Date: date("2025-04-07"), IsRecurring: true},
	{Name: "Liberation Day", Date: date("2025-07-04"), IsRecurring: true},
	{Name: "Christmas Day", Date: date("2025-12-25"), IsRecurring: true},
	{Name: "Boxing Day", Date: date("2025-12-26"), IsRecurring: true},
}

// WorkWeek returns the default Monday to Friday 09:00-17:00 schedule for an employee.
func WorkWeek(employeeID int64) []schedule.WorkSchedule {
	days := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	out := make([]schedule.WorkSchedule, 0, len(days))
	for _, d := range days {
		out = append(out, schedule.WorkSchedule{
			EmployeeID: employeeID,
			DayOfWeek:  d,
			StartTime:  "09:00:00",
			EndTime:    "17:00:00",
		})
	}
	return out
}

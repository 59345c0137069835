package http

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/dashboard"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/employee"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/department"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/holiday"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/schedule"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
)

// memStore backs the repositories used by the router tests.
type memStore struct {
	mu          sync.Mutex
	users       map[string]user.User
	departments map[int64]string
	employees   map[int64]employee.Employee
	records     map[string]attendance.Attendance
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[string]user.User),
		departments: map[int64]string{1: "All Members", 2: "Engineering", 3: "Finance", 9: "Empty"},
		employees:   make(map[int64]employee.Employee),
		records:     make(map[string]attendance.Attendance),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func recordKey(employeeID int64, day time.Time) string {
	return day.Format("2006-01-02") + "/" + strconv.FormatInt(employeeID, 10)
}

func inDepartment(e employee.Employee, departmentID int64) bool {
	if !department.IsFilter(departmentID) {
		return true
	}
	return e.DepartmentID != nil && *e.DepartmentID == departmentID
}

func hoursPtr(a attendance.Attendance) *float64 {
	h := a.HoursWorked.InexactFloat64()
	return &h
}

// activeEmployees returns active employees of a department ordered by name.
func (m *memStore) activeEmployees(departmentID, employeeID int64) []employee.Employee {
	var out []employee.Employee
	for _, e := range m.employees {
		if e.IsActive() && inDepartment(e, departmentID) && (employeeID == 0 || e.ID == employeeID) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ==================== users ====================

type memUsers struct{ *memStore }

func (r memUsers) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r memUsers) GetByID(ctx context.Context, id int64) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r memUsers) Create(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return user.User{}, user.ErrUserEmailExists
	}
	u.ID = r.id()
	u.CreatedAt = time.Now()
	r.users[u.Email] = u
	return u, nil
}

// ==================== employees ====================

type memEmployees struct{ *memStore }

func (r memEmployees) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r memEmployees) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []employee.Employee{}
	status := filter.EffectiveStatus()
	for _, e := range r.employees {
		if (status == "" || e.Status == status) && inDepartment(e, filter.DepartmentID) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memEmployees) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.employees {
		if existing.Email == e.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	name, ok := r.departments[*e.DepartmentID]
	if !ok {
		return employee.Employee{}, employee.ErrDepartmentNotFound
	}
	e.ID = r.id()
	e.DepartmentName = &name
	e.CreatedAt = time.Now()
	r.employees[e.ID] = e
	return e, nil
}

func (r memEmployees) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[e.ID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	r.employees[e.ID] = e
	return e, nil
}

func (r memEmployees) UpdateStatus(ctx context.Context, id int64, status employee.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Status = status
	r.employees[id] = e
	return nil
}

// ==================== attendance ====================

type memAttendance struct{ *memStore }

func (r memAttendance) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.records[recordKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (r memAttendance) ClockIn(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := recordKey(a.EmployeeID, a.Date)
	if existing, ok := r.records[key]; ok && existing.ClockIn != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	a.ID = r.id()
	r.records[key] = a
	return a, nil
}

func (r memAttendance) ClockOut(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[recordKey(a.EmployeeID, a.Date)] = a
	return a, nil
}

func (r memAttendance) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := recordKey(a.EmployeeID, a.Date)
	if existing, ok := r.records[key]; ok {
		a.ID = existing.ID
	} else {
		a.ID = r.id()
	}
	r.records[key] = a
	return a, nil
}

// ==================== reports ====================

type memReports struct{ *memStore }

func (r memReports) Daily(ctx context.Context, day time.Time, departmentID int64) ([]attendance.DailyRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := []attendance.DailyRow{}
	for _, e := range r.activeEmployees(departmentID, 0) {
		row := attendance.DailyRow{
			EmployeeID:     e.ID,
			EmployeeCode:   e.EmployeeCode,
			Name:           e.Name,
			DepartmentName: e.DepartmentName,
			Date:           day.Format("2006-01-02"),
		}
		if a, ok := r.records[recordKey(e.ID, day)]; ok {
			status := a.Status
			ot := a.OvertimeHours.InexactFloat64()
			row.ClockIn, row.ClockOut, row.Status = a.ClockIn, a.ClockOut, &status
			row.HoursWorked, row.OvertimeHours = hoursPtr(a), &ot
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r memReports) MonthlySummary(ctx context.Context, f attendance.PeriodFilter) ([]attendance.MonthlySummaryRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := []attendance.MonthlySummaryRow{}
	for _, e := range r.activeEmployees(f.DepartmentID, f.EmployeeID) {
		row := attendance.MonthlySummaryRow{EmployeeID: e.ID, Name: e.Name, DepartmentName: e.DepartmentName}
		for _, a := range r.records {
			if a.EmployeeID != e.ID || a.Date.Before(f.From) || !a.Date.Before(f.To) {
				continue
			}
			row.TotalRecords++
			switch a.Status {
			case attendance.StatusPresent:
				row.PresentDays++
			case attendance.StatusAbsent:
				row.AbsentDays++
			case attendance.StatusHalfDay:
				row.HalfDays++
			}
		}
		if row.TotalRecords > 0 {
			row.AttendancePercent = 100 * float64(row.PresentDays) / float64(row.TotalRecords)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r memReports) MonthlyInOut(ctx context.Context, f attendance.PeriodFilter) ([]attendance.InOutRow, error) {
	return []attendance.InOutRow{}, nil
}

func (r memReports) LateClockIns(ctx context.Context, f attendance.PeriodFilter, threshold string) ([]attendance.LateRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := []attendance.LateRow{}
	for _, e := range r.activeEmployees(f.DepartmentID, 0) {
		for _, a := range r.records {
			if a.EmployeeID != e.ID || a.ClockIn == nil || *a.ClockIn <= threshold ||
				a.Date.Before(f.From) || !a.Date.Before(f.To) {
				continue
			}
			rows = append(rows, attendance.LateRow{
				EmployeeID:     e.ID,
				Name:           e.Name,
				DepartmentName: e.DepartmentName,
				Date:           a.Date.Format("2006-01-02"),
				ClockIn:        a.ClockIn,
				HoursWorked:    hoursPtr(a),
			})
		}
	}
	return rows, nil
}

func (r memReports) Overtime(ctx context.Context, f attendance.PeriodFilter) ([]attendance.OvertimeRow, error) {
	return []attendance.OvertimeRow{}, nil
}

func (r memReports) OvertimeByEmployee(ctx context.Context, f attendance.PeriodFilter) ([]attendance.OvertimeByEmployeeRow, error) {
	return []attendance.OvertimeByEmployeeRow{}, nil
}

func (r memReports) PeriodTotals(ctx context.Context, f attendance.PeriodFilter, threshold string) (attendance.PeriodTotals, error) {
	return attendance.PeriodTotals{}, nil
}

type memDashboard struct{ *memStore }

func (r memDashboard) GetEmployeeCounts(ctx context.Context, departmentID int64) (dashboard.EmployeeCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c dashboard.EmployeeCounts
	for _, e := range r.employees {
		if inDepartment(e, departmentID) {
			c.Total++
			if e.IsActive() {
				c.Active++
			}
		}
	}
	return c, nil
}

// ==================== services without repositories here ====================

type stubMaster struct{}

func (stubMaster) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return []department.Department{{ID: 1, Name: "All Members"}, {ID: 2, Name: "Engineering"}}, nil
}

func (stubMaster) GetDepartment(ctx context.Context, id int64) (department.Department, error) {
	if id != 2 {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return department.Department{ID: 2, Name: "Engineering"}, nil
}

func (stubMaster) ListHolidays(ctx context.Context, req holiday.ListHolidaysRequest) ([]holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (stubMaster) ListWorkSchedules(ctx context.Context, employeeID int64) ([]schedule.WorkScheduleResponse, error) {
	return nil, nil
}

type stubLeave struct{}

func (stubLeave) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (stubLeave) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	l := req.ToEntity()
	l.ID = 1
	return l.ToResponse(), nil
}

func (stubLeave) ApproveLeave(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
}

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

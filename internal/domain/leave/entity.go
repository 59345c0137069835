package leave

import "time"

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeVacation  LeaveType = "vacation"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeEmergency LeaveType = "emergency"
)

var LeaveTypes = []LeaveType{LeaveTypeSick, LeaveTypeVacation, LeaveTypePersonal, LeaveTypeEmergency}

// DefaultPaid reports whether a leave type is paid unless stated otherwise.
func (t LeaveType) DefaultPaid() bool {
	return t != LeaveTypeSick
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

type Leave struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	LeaveType  LeaveType
	IsPaid     bool
	Reason     *string
	Status     LeaveStatus
	CreatedAt  time.Time

	// Join
	EmployeeName   string
	EmployeeCode   *string
	DepartmentName *string
}

// Days is the inclusive length of the leave.
func (l Leave) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

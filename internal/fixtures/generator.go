package fixtures

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

const (
	weekendRestProbability = 0.8
	absentThreshold        = 0.95
	halfDayThreshold       = 0.90
)

var (
	halfDayIn  = 9 * time.Hour
	halfDayOut = 13 * time.Hour
	earliestIn = 8 * time.Hour
)

// Generator synthesizes attendance and leave history. It is not safe for
// concurrent use.
type Generator struct {
	rng    *rand.Rand
	policy attendance.Policy
}

// NewGenerator builds a generator from a fixed seed so runs are reproducible.
func NewGenerator(seed uint64, policy attendance.Policy) *Generator {
	return NewGeneratorWithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), policy)
}

func NewGeneratorWithRand(rng *rand.Rand, policy attendance.Policy) *Generator {
	return &Generator{rng: rng, policy: policy}
}

// Window returns the first day of the month two months before now and the
// last day of the month after now, both inclusive, at midnight UTC.
func Window(now time.Time) (time.Time, time.Time) {
	y, m, _ := now.Date()
	start := time.Date(y, m-2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(y, m+2, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Attendance returns one record per employee per day from start to end inclusive.
func (g *Generator) Attendance(employeeIDs []int64, start, end time.Time) []attendance.Attendance {
	var out []attendance.Attendance
	for _, id := range employeeIDs {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			out = append(out, g.Day(id, d))
		}
	}
	return out
}

// Day draws a single record.
func (g *Generator) Day(employeeID int64, day time.Time) attendance.Attendance {
	a := attendance.Attendance{
		EmployeeID:    employeeID,
		Date:          day,
		IsWeekend:     attendance.IsWeekendDay(day),
		HoursWorked:   decimal.Zero,
		OvertimeHours: decimal.Zero,
	}

	if a.IsWeekend {
		if g.rng.Float64() < weekendRestProbability {
			a.Status = attendance.StatusWeekend
			return a
		}
		g.halfShift(&a, attendance.StatusPresent)
		return a
	}

	r := g.rng.Float64()
	switch {
	case r > absentThreshold:
		a.Status = attendance.StatusAbsent
	case r > halfDayThreshold:
		g.halfShift(&a, attendance.StatusHalfDay)
	default:
		in := earliestIn + time.Duration(g.rng.IntN(90))*time.Minute
		worked := 8 + g.rng.Float64()
		out := in + time.Duration(worked*float64(time.Hour)).Truncate(time.Minute)

		a.Status = attendance.StatusPresent
		a.ClockIn = clock(in)
		a.ClockOut = clock(out)
		a.HoursWorked = decimal.NewFromFloat(worked).Round(2)
		a.OvertimeHours = g.policy.Overtime(a.HoursWorked)
	}
	return a
}

func (g *Generator) halfShift(a *attendance.Attendance, status attendance.Status) {
	a.Status = status
	a.ClockIn = clock(halfDayIn)
	a.ClockOut = clock(halfDayOut)
	a.HoursWorked = attendance.HoursBetween(halfDayIn, halfDayOut)
	a.OvertimeHours = g.policy.Overtime(a.HoursWorked)
}

// Leaves draws one to three approved leaves of one to five days per
// employee, each starting inside the window.
func (g *Generator) Leaves(employeeIDs []int64, start, end time.Time) []leave.Leave {
	span := int(end.Sub(start).Hours()/24) + 1
	var out []leave.Leave
	for _, id := range employeeIDs {
		n := 1 + g.rng.IntN(3)
		for i := 0; i < n; i++ {
			from := start.AddDate(0, 0, g.rng.IntN(span))
			days := 1 + g.rng.IntN(5)
			t := leave.LeaveTypes[g.rng.IntN(len(leave.LeaveTypes))]
			out = append(out, leave.Leave{
				EmployeeID: id,
				StartDate:  from,
				EndDate:    from.AddDate(0, 0, days-1),
				LeaveType:  t,
				IsPaid:     t.DefaultPaid(),
				Reason:     strPtr(fmt.Sprintf("%s leave", t)),
				Status:     leave.LeaveStatusApproved,
			})
		}
	}
	return out
}

func clock(d time.Duration) *string {
	s := attendance.FormatTimeOfDay(d)
	return &s
}

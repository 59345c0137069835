package attendance

import "errors"

// Attendance domain errors
var (
	// Clock errors
	ErrAlreadyClockedIn  = errors.New("employee has already clocked in today")
	ErrNotClockedIn      = errors.New("no clock-in found for today")
	ErrAlreadyClockedOut = errors.New("employee has already clocked out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidClockTime   = errors.New("clock time must be HH:MM or HH:MM:SS")
)

package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrFutureDate       = errors.New("cannot record attendance for a future date")
	ErrAlreadyClockedIn = errors.New("you already clocked in today")
	ErrPriorDayUnclosed = errors.New("previous day is missing a clock-out; fix it manually first")

	// Clock-out errors
	ErrNoOpenSession     = errors.New("no clock-in record found for today")
	ErrAlreadyClockedOut = errors.New("already clocked out")
	ErrOutBeforeIn       = errors.New("clock-out must be after clock-in")
	ErrCrossDayBoundary  = errors.New("clock-out cannot extend past 23:59:59 of the clock-in day")

	// Manual entry errors
	ErrTimesOnNonWorkingDay = errors.New("cannot log working hours on a leave or holiday")
)

package attendance

import (
	"math"
	"time"

	"github.com/hourline-app/hourline-backend-go/internal/domain/attendance"
	"github.com/hourline-app/hourline-backend-go/internal/domain/policy"
)

// ClassifyLateStatus maps a clock-in instant onto the policy's entry bands.
// Only the time of day matters; the calendar date is irrelevant here.
//
//	on-time:   time <= office start
//	late:      office start < time <= last allowed entry
//	violation: time > last allowed entry
//
// Both lower bounds are inclusive: clocking in at exactly office start is
// on-time, at exactly the grace cutoff is late. Comparison is lexicographic
// on zero-padded wall clock strings, with the policy's "HH:MM" thresholds
// normalized to "HH:MM:00" so that 09:00:01 already counts as late.
func ClassifyLateStatus(clockIn time.Time, p policy.AttendancePolicy) attendance.LateStatus {
	entry := clockIn.Format("15:04:05")

	switch {
	case entry <= p.OfficeStartTime+":00":
		return attendance.LateStatusOnTime
	case entry <= p.LastAllowedEntry+":00":
		return attendance.LateStatusLate
	default:
		return attendance.LateStatusViolation
	}
}

// RequiredMinutes derives the policy minimum for a day type.
func RequiredMinutes(dayType attendance.DayType, p policy.AttendancePolicy) int {
	switch dayType {
	case attendance.DayTypeWorking:
		return int(math.Round(p.MinDailyHours * 60))
	case attendance.DayTypeHalfDay:
		return int(math.Round(p.FirstHalfMinHours * 60))
	default:
		return 0
	}
}

// WorkedMinutes returns the whole minutes between a validated clock pair.
// The caller guarantees clockOut is after clockIn; partial minutes are
// truncated.
func WorkedMinutes(clockIn, clockOut time.Time) int {
	return int(clockOut.Sub(clockIn).Seconds()) / 60
}

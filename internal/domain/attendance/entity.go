package attendance

import (
	"time"
)

// DayType describes what kind of day a record covers.
type DayType string

const (
	DayTypeWorking DayType = "working"
	DayTypeHalfDay DayType = "half-day"
	DayTypeLeave   DayType = "leave"
	DayTypeHoliday DayType = "holiday"
)

// DayTypes lists every valid day type value.
var DayTypes = []string{
	string(DayTypeWorking),
	string(DayTypeHalfDay),
	string(DayTypeLeave),
	string(DayTypeHoliday),
}

// IsNonWorking reports whether the day type forbids clock times.
func (d DayType) IsNonWorking() bool {
	return d == DayTypeLeave || d == DayTypeHoliday
}

// LateStatus classifies a clock-in against the user's policy thresholds.
type LateStatus string

const (
	LateStatusOnTime    LateStatus = "on-time"
	LateStatusLate      LateStatus = "late"
	LateStatusViolation LateStatus = "violation"
)

// EntryMethod records whether the row was produced by a clock event or an
// operator correction.
type EntryMethod string

const (
	EntryMethodAuto   EntryMethod = "auto"
	EntryMethodManual EntryMethod = "manual"
)

// DayRecord is one user's attendance state for one calendar date.
// At most one record exists per (UserID, Date).
type DayRecord struct {
	ID              string
	UserID          string
	Date            time.Time // calendar date, midnight UTC
	ClockIn         *time.Time
	ClockOut        *time.Time
	DayType         DayType
	LateStatus      *LateStatus
	WorkedMinutes   *int
	RequiredMinutes int
	EntryMethod     EntryMethod
	EditedAt        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

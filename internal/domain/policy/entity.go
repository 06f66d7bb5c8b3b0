package policy

import (
	"time"
)

// AttendancePolicy holds one user's attendance rules. Thresholds are "HH:MM"
// wall clock strings compared lexicographically, matching how the settings UI
// submits them.
type AttendancePolicy struct {
	UserID            string
	MinDailyHours     float64
	OfficeStartTime   string // "HH:MM"
	LastAllowedEntry  string // "HH:MM", grace cutoff
	FirstHalfMinHours float64
	WorkDays          []int // 0=Mon .. 6=Sun
	EffectiveDate     string
	UpdatedAt         time.Time
}

// Default returns the fallback policy used when a user has never saved
// settings: 8h days starting 09:00, grace until 10:00, 4h half days, Mon-Fri.
func Default(userID string) AttendancePolicy {
	return AttendancePolicy{
		UserID:            userID,
		MinDailyHours:     8.0,
		OfficeStartTime:   "09:00",
		LastAllowedEntry:  "10:00",
		FirstHalfMinHours: 4.0,
		WorkDays:          []int{0, 1, 2, 3, 4},
	}
}

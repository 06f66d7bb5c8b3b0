package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hourline-app/hourline-backend-go/internal/domain/attendance"
	"github.com/hourline-app/hourline-backend-go/internal/domain/policy"
)

func clockAt(hour, min, sec int) time.Time {
	return time.Date(2025, 3, 10, hour, min, sec, 0, time.UTC)
}

func TestClassifyLateStatus(t *testing.T) {
	pol := policy.Default("user-1")

	tests := []struct {
		name    string
		clockIn time.Time
		want    attendance.LateStatus
	}{
		{"well before office start", clockAt(8, 30, 0), attendance.LateStatusOnTime},
		{"exactly office start", clockAt(9, 0, 0), attendance.LateStatusOnTime},
		{"one second past office start", clockAt(9, 0, 1), attendance.LateStatusLate},
		{"inside grace window", clockAt(9, 30, 0), attendance.LateStatusLate},
		{"exactly grace cutoff", clockAt(10, 0, 0), attendance.LateStatusLate},
		{"one second past grace cutoff", clockAt(10, 0, 1), attendance.LateStatusViolation},
		{"well past grace cutoff", clockAt(13, 45, 0), attendance.LateStatusViolation},
		{"midnight", clockAt(0, 0, 0), attendance.LateStatusOnTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLateStatus(tt.clockIn, pol))
		})
	}
}

func TestClassifyLateStatusCustomThresholds(t *testing.T) {
	pol := policy.AttendancePolicy{
		UserID:           "user-1",
		OfficeStartTime:  "07:30",
		LastAllowedEntry: "08:15",
	}

	assert.Equal(t, attendance.LateStatusOnTime, ClassifyLateStatus(clockAt(7, 30, 0), pol))
	assert.Equal(t, attendance.LateStatusLate, ClassifyLateStatus(clockAt(7, 31, 0), pol))
	assert.Equal(t, attendance.LateStatusLate, ClassifyLateStatus(clockAt(8, 15, 0), pol))
	assert.Equal(t, attendance.LateStatusViolation, ClassifyLateStatus(clockAt(8, 15, 1), pol))
}

func TestRequiredMinutes(t *testing.T) {
	pol := policy.Default("user-1")

	assert.Equal(t, 480, RequiredMinutes(attendance.DayTypeWorking, pol))
	assert.Equal(t, 240, RequiredMinutes(attendance.DayTypeHalfDay, pol))
	assert.Equal(t, 0, RequiredMinutes(attendance.DayTypeLeave, pol))
	assert.Equal(t, 0, RequiredMinutes(attendance.DayTypeHoliday, pol))
}

func TestRequiredMinutesFractionalHours(t *testing.T) {
	pol := policy.AttendancePolicy{
		MinDailyHours:     7.5,
		FirstHalfMinHours: 3.75,
	}

	assert.Equal(t, 450, RequiredMinutes(attendance.DayTypeWorking, pol))
	assert.Equal(t, 225, RequiredMinutes(attendance.DayTypeHalfDay, pol))
}

func TestWorkedMinutes(t *testing.T) {
	in := clockAt(9, 0, 0)

	// 8h30m session
	assert.Equal(t, 510, WorkedMinutes(in, clockAt(17, 30, 0)))

	// partial minutes truncate, never round up
	assert.Equal(t, 510, WorkedMinutes(in, clockAt(17, 30, 59)))

	// sub-minute session
	assert.Equal(t, 0, WorkedMinutes(in, clockAt(9, 0, 45)))
}

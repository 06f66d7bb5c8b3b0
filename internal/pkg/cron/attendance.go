package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hourline-app/hourline-backend-go/internal/domain/attendance"
)

// AttendanceJobs holds maintenance jobs over day records. The unclosed-session
// job only reports: a prior-day record stuck open blocks the next clock-in and
// requires a manual correction, so the fix stays with an operator.
type AttendanceJobs struct {
	recordRepo attendance.DayRecordRepository
}

func NewAttendanceJobs(recordRepo attendance.DayRecordRepository) *AttendanceJobs {
	return &AttendanceJobs{recordRepo: recordRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("flag_unclosed_sessions", 1*time.Hour, j.FlagUnclosedSessions)
}

// FlagUnclosedSessions logs every record from a past date that still has a
// clock-in without a clock-out.
func (j *AttendanceJobs) FlagUnclosedSessions(ctx context.Context) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	open, err := j.recordRepo.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list unclosed sessions: %w", err)
	}

	if len(open) == 0 {
		return nil
	}

	for _, rec := range open {
		slog.Warn("Unclosed attendance session needs manual correction",
			"user_id", rec.UserID,
			"date", rec.Date.Format("2006-01-02"),
			"clock_in", rec.ClockIn.Format(time.RFC3339),
			"day_type", string(rec.DayType))
	}
	slog.Info("Flagged unclosed attendance sessions", "count", len(open))

	return nil
}

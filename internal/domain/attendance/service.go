package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// ClockIn opens (or converts) today's record for the user.
	ClockIn(ctx context.Context, req ClockEventRequest) (DayRecordResponse, error)

	// ClockOut closes today's open record.
	ClockOut(ctx context.Context, req ClockEventRequest) (DayRecordResponse, error)

	// ManualEntry upserts a record with operator-supplied day type and times.
	ManualEntry(ctx context.Context, req ManualEntryRequest) (DayRecordResponse, error)

	// QueryRange returns records between the optional inclusive bounds.
	QueryRange(ctx context.Context, filter RangeFilter) ([]DayRecordResponse, error)

	// Summarize folds a range of records into dashboard totals.
	Summarize(ctx context.Context, filter RangeFilter) (RangeSummary, error)
}

package attendance

import (
	"context"
	"time"
)

// DayRecordRepository defines data access for day records. The backing store
// enforces the UNIQUE(user_id, date) constraint.
type DayRecordRepository interface {
	// GetByUserAndDate returns the record for one user on one calendar date,
	// or (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*DayRecord, error)

	// ListByUserAndRange returns records between start and end (inclusive).
	// Either bound may be nil to leave the range open on that side.
	ListByUserAndRange(ctx context.Context, userID string, start, end *time.Time) ([]DayRecord, error)

	// Create inserts a new record and returns it with id and timestamps set.
	Create(ctx context.Context, rec DayRecord) (DayRecord, error)

	// Update overwrites the mutable fields of the record identified by
	// (UserID, Date), including clearing fields back to NULL.
	Update(ctx context.Context, rec DayRecord) (DayRecord, error)

	// ListOpenBefore returns records dated strictly before the given date that
	// have a clock-in but no clock-out.
	ListOpenBefore(ctx context.Context, date time.Time) ([]DayRecord, error)
}

package policy

import (
	"context"
)

// PolicyRepository defines data access for per-user attendance policies.
type PolicyRepository interface {
	// GetByUserID returns the stored policy, or (nil, nil) when the user has
	// never saved settings.
	GetByUserID(ctx context.Context, userID string) (*AttendancePolicy, error)

	// Upsert inserts the policy row or overwrites the existing one.
	Upsert(ctx context.Context, p AttendancePolicy) (AttendancePolicy, error)
}

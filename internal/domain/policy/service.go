package policy

import (
	"context"
)

// Resolver loads a user's effective attendance policy. Resolve never fails for
// a missing row; it falls back to Default. The error path is infrastructure
// only.
type Resolver interface {
	Resolve(ctx context.Context, userID string) (AttendancePolicy, error)
}

// PolicyService is the settings API surface.
type PolicyService interface {
	Resolver

	// Get returns the user's policy as a response DTO (stored or default).
	Get(ctx context.Context, userID string) (PolicyResponse, error)

	// Update upserts the user's policy.
	Update(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)
}

package policy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourline-app/hourline-backend-go/internal/domain/policy"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/validator"
)

type fakePolicyRepo struct {
	mu       sync.Mutex
	policies map[string]policy.AttendancePolicy
}

func newFakePolicyRepo() *fakePolicyRepo {
	return &fakePolicyRepo{policies: make(map[string]policy.AttendancePolicy)}
}

func (f *fakePolicyRepo) GetByUserID(_ context.Context, userID string) (*policy.AttendancePolicy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.policies[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePolicyRepo) Upsert(_ context.Context, p policy.AttendancePolicy) (policy.AttendancePolicy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.UpdatedAt = time.Now()
	f.policies[p.UserID] = p
	return p, nil
}

func TestPolicyService_Resolve_FallsBackToDefault(t *testing.T) {
	t.Parallel()
	svc := NewPolicyService(newFakePolicyRepo())

	p, err := svc.Resolve(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, 8.0, p.MinDailyHours)
	assert.Equal(t, "09:00", p.OfficeStartTime)
	assert.Equal(t, "10:00", p.LastAllowedEntry)
	assert.Equal(t, 4.0, p.FirstHalfMinHours)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, p.WorkDays)
}

func TestPolicyService_Resolve_ReturnsStored(t *testing.T) {
	t.Parallel()
	repo := newFakePolicyRepo()
	svc := NewPolicyService(repo)

	_, err := repo.Upsert(context.Background(), policy.AttendancePolicy{
		UserID:            "user-1",
		MinDailyHours:     7.5,
		OfficeStartTime:   "08:00",
		LastAllowedEntry:  "08:30",
		FirstHalfMinHours: 3.5,
		WorkDays:          []int{0, 1, 2, 3, 4, 5},
	})
	require.NoError(t, err)

	p, err := svc.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 7.5, p.MinDailyHours)
	assert.Equal(t, "08:00", p.OfficeStartTime)
}

func TestPolicyService_Get_Default(t *testing.T) {
	t.Parallel()
	svc := NewPolicyService(newFakePolicyRepo())

	resp, err := svc.Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "0,1,2,3,4", resp.WorkDays)
	assert.Equal(t, "09:00", resp.OfficeStartTime)
}

func TestPolicyService_Update_Success(t *testing.T) {
	t.Parallel()
	svc := NewPolicyService(newFakePolicyRepo())

	resp, err := svc.Update(context.Background(), policy.UpdatePolicyRequest{
		UserID:            "user-1",
		MinDailyHours:     7.5,
		OfficeStartTime:   "08:30",
		LastAllowedEntry:  "09:15",
		FirstHalfMinHours: 3.75,
		WorkDays:          "0,1,2,3,4,5",
		EffectiveDate:     "2025-04-01",
	})

	require.NoError(t, err)
	assert.Equal(t, 7.5, resp.MinDailyHours)
	assert.Equal(t, "08:30", resp.OfficeStartTime)
	assert.Equal(t, "0,1,2,3,4,5", resp.WorkDays)
	assert.Equal(t, "2025-04-01", resp.EffectiveDate)

	// subsequent resolves see the saved policy
	p, err := svc.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "09:15", p.LastAllowedEntry)
}

func TestPolicyService_Update_ValidationErrors(t *testing.T) {
	t.Parallel()
	svc := NewPolicyService(newFakePolicyRepo())

	tests := []struct {
		name  string
		req   policy.UpdatePolicyRequest
		field string
	}{
		{
			name: "grace cutoff before office start",
			req: policy.UpdatePolicyRequest{
				UserID: "user-1", MinDailyHours: 8, FirstHalfMinHours: 4,
				OfficeStartTime: "10:00", LastAllowedEntry: "09:00", WorkDays: "0,1",
			},
			field: "last_allowed_entry",
		},
		{
			name: "bad clock time format",
			req: policy.UpdatePolicyRequest{
				UserID: "user-1", MinDailyHours: 8, FirstHalfMinHours: 4,
				OfficeStartTime: "9am", LastAllowedEntry: "10:00", WorkDays: "0,1",
			},
			field: "office_start_time",
		},
		{
			name: "hours out of range",
			req: policy.UpdatePolicyRequest{
				UserID: "user-1", MinDailyHours: 25, FirstHalfMinHours: 4,
				OfficeStartTime: "09:00", LastAllowedEntry: "10:00", WorkDays: "0,1",
			},
			field: "min_daily_hours",
		},
		{
			name: "bad work days",
			req: policy.UpdatePolicyRequest{
				UserID: "user-1", MinDailyHours: 8, FirstHalfMinHours: 4,
				OfficeStartTime: "09:00", LastAllowedEntry: "10:00", WorkDays: "0,7",
			},
			field: "work_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.req)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)

			found := false
			for _, ve := range verrs {
				if ve.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected a validation error on %s", tt.field)
		})
	}
}

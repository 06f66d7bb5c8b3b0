package policy

import (
	"context"
	"fmt"

	"github.com/hourline-app/hourline-backend-go/internal/domain/policy"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/validator"
)

type PolicyServiceImpl struct {
	policy.PolicyRepository
}

func NewPolicyService(policyRepo policy.PolicyRepository) policy.PolicyService {
	return &PolicyServiceImpl{
		PolicyRepository: policyRepo,
	}
}

// Resolve implements policy.Resolver. A user without saved settings gets the
// defaults; absence is not an error.
func (s *PolicyServiceImpl) Resolve(ctx context.Context, userID string) (policy.AttendancePolicy, error) {
	stored, err := s.PolicyRepository.GetByUserID(ctx, userID)
	if err != nil {
		return policy.AttendancePolicy{}, fmt.Errorf("failed to get policy: %w", err)
	}
	if stored == nil {
		return policy.Default(userID), nil
	}
	return *stored, nil
}

// Get implements policy.PolicyService.
func (s *PolicyServiceImpl) Get(ctx context.Context, userID string) (policy.PolicyResponse, error) {
	p, err := s.Resolve(ctx, userID)
	if err != nil {
		return policy.PolicyResponse{}, err
	}
	return mapPolicyToResponse(p), nil
}

// Update implements policy.PolicyService.
func (s *PolicyServiceImpl) Update(ctx context.Context, req policy.UpdatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	saved, err := s.PolicyRepository.Upsert(ctx, policy.AttendancePolicy{
		UserID:            req.UserID,
		MinDailyHours:     req.MinDailyHours,
		OfficeStartTime:   req.OfficeStartTime,
		LastAllowedEntry:  req.LastAllowedEntry,
		FirstHalfMinHours: req.FirstHalfMinHours,
		WorkDays:          req.ParsedWorkDays,
		EffectiveDate:     req.EffectiveDate,
	})
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to upsert policy: %w", err)
	}

	return mapPolicyToResponse(saved), nil
}

func mapPolicyToResponse(p policy.AttendancePolicy) policy.PolicyResponse {
	return policy.PolicyResponse{
		UserID:            p.UserID,
		MinDailyHours:     p.MinDailyHours,
		OfficeStartTime:   p.OfficeStartTime,
		LastAllowedEntry:  p.LastAllowedEntry,
		FirstHalfMinHours: p.FirstHalfMinHours,
		WorkDays:          validator.FormatWorkDays(p.WorkDays),
		EffectiveDate:     p.EffectiveDate,
	}
}

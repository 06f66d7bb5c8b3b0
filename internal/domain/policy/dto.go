package policy

import (
	"github.com/hourline-app/hourline-backend-go/internal/pkg/validator"
)

// ========================================
// POLICY DTOs
// ========================================

type UpdatePolicyRequest struct {
	UserID            string  `json:"user_id"`
	MinDailyHours     float64 `json:"min_daily_hours"`
	OfficeStartTime   string  `json:"office_start_time"`  // "HH:MM"
	LastAllowedEntry  string  `json:"last_allowed_entry"` // "HH:MM"
	FirstHalfMinHours float64 `json:"first_half_min_hours"`
	WorkDays          string  `json:"work_days"` // CSV of 0..6, 0=Mon
	EffectiveDate     string  `json:"effective_date"`

	// Parsed by Validate
	ParsedWorkDays []int `json:"-"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.MinDailyHours <= 0 || r.MinDailyHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_daily_hours",
			Message: "min_daily_hours must be between 0 and 24",
		})
	}

	if r.FirstHalfMinHours <= 0 || r.FirstHalfMinHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_half_min_hours",
			Message: "first_half_min_hours must be between 0 and 24",
		})
	}

	if !validator.IsValidClockTime(r.OfficeStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_start_time",
			Message: "office_start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidClockTime(r.LastAllowedEntry) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_allowed_entry",
			Message: "last_allowed_entry must be in HH:MM format",
		})
	}

	// Lexicographic comparison is valid for zero-padded HH:MM.
	if validator.IsValidClockTime(r.OfficeStartTime) && validator.IsValidClockTime(r.LastAllowedEntry) &&
		r.OfficeStartTime > r.LastAllowedEntry {
		errs = append(errs, validator.ValidationError{
			Field:   "last_allowed_entry",
			Message: "last_allowed_entry must not be earlier than office_start_time",
		})
	}

	if r.EffectiveDate != "" {
		if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_date",
				Message: "effective_date must be in YYYY-MM-DD format",
			})
		}
	}

	if days, err := validator.ParseWorkDays(r.WorkDays); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "work_days",
			Message: "work_days must be a comma-separated list of weekday indexes 0-6",
		})
	} else {
		r.ParsedWorkDays = days
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PolicyResponse struct {
	UserID            string  `json:"user_id"`
	MinDailyHours     float64 `json:"min_daily_hours"`
	OfficeStartTime   string  `json:"office_start_time"`
	LastAllowedEntry  string  `json:"last_allowed_entry"`
	FirstHalfMinHours float64 `json:"first_half_min_hours"`
	WorkDays          string  `json:"work_days"`
	EffectiveDate     string  `json:"effective_date,omitempty"`
}

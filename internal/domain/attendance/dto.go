package attendance

import (
	"time"

	"github.com/hourline-app/hourline-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockEventRequest struct {
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"` // RFC3339

	// Parsed by Validate
	ParsedTimestamp time.Time `json:"-"`
}

func (r *ClockEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	} else if ts, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 datetime",
		})
	} else {
		r.ParsedTimestamp = ts
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ManualEntryRequest struct {
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	DayType  string  `json:"day_type"`
	ClockIn  *string `json:"clock_in,omitempty"`  // RFC3339
	ClockOut *string `json:"clock_out,omitempty"` // RFC3339

	// Parsed by Validate
	ParsedDate     time.Time  `json:"-"`
	ParsedClockIn  *time.Time `json:"-"`
	ParsedClockOut *time.Time `json:"-"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if d, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedDate = d
	}

	if !validator.IsInSlice(r.DayType, DayTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_type",
			Message: "day_type must be one of: working, half-day, leave, holiday",
		})
	}

	if r.ClockIn != nil && *r.ClockIn != "" {
		if ts, ok := validator.IsValidDateTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be a valid RFC3339 datetime",
			})
		} else {
			r.ParsedClockIn = &ts
		}
	}

	if r.ClockOut != nil && *r.ClockOut != "" {
		if ts, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be a valid RFC3339 datetime",
			})
		} else {
			r.ParsedClockOut = &ts
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeFilter struct {
	UserID    string  `json:"user_id"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Parsed by Validate
	ParsedStart *time.Time `json:"-"`
	ParsedEnd   *time.Time `json:"-"`
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if d, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		} else {
			f.ParsedStart = &d
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if d, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else {
			f.ParsedEnd = &d
		}
	}

	if f.ParsedStart != nil && f.ParsedEnd != nil && f.ParsedEnd.Before(*f.ParsedStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayRecordResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Date            string  `json:"date"`
	ClockIn         *string `json:"clock_in,omitempty"`
	ClockOut        *string `json:"clock_out,omitempty"`
	DayType         string  `json:"day_type"`
	LateStatus      *string `json:"late_status,omitempty"`
	WorkedMinutes   *int    `json:"worked_minutes,omitempty"`
	RequiredMinutes int     `json:"required_minutes"`
	EntryMethod     string  `json:"entry_method"`
	EditedAt        *string `json:"edited_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// RangeSummary aggregates a range of day records for the dashboard.
type RangeSummary struct {
	TotalWorkedMinutes   int `json:"total_worked_minutes"`
	TotalRequiredMinutes int `json:"total_required_minutes"`
	LateCount            int `json:"late_count"`
	ViolationCount       int `json:"violation_count"`
	PendingDays          int `json:"pending_days"` // working days with no recorded hours yet
	RecordCount          int `json:"record_count"`
}

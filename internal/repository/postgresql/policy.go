package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hourline-app/hourline-backend-go/internal/domain/policy"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/database"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/validator"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}

// GetByUserID implements policy.PolicyRepository.
func (r *policyRepository) GetByUserID(ctx context.Context, userID string) (*policy.AttendancePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, min_daily_hours, office_start_time, last_allowed_entry,
			   first_half_min_hours, work_days, effective_date, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var (
		p             policy.AttendancePolicy
		workDays      string
		effectiveDate *string
	)
	err := q.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.MinDailyHours, &p.OfficeStartTime, &p.LastAllowedEntry,
		&p.FirstHalfMinHours, &workDays, &effectiveDate, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}

	days, err := validator.ParseWorkDays(workDays)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored work days %q: %w", workDays, err)
	}
	p.WorkDays = days
	if effectiveDate != nil {
		p.EffectiveDate = *effectiveDate
	}

	return &p, nil
}

// Upsert implements policy.PolicyRepository.
func (r *policyRepository) Upsert(ctx context.Context, p policy.AttendancePolicy) (policy.AttendancePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_settings (
			user_id, min_daily_hours, office_start_time, last_allowed_entry,
			first_half_min_hours, work_days, effective_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, NULLIF($7, '')
		)
		ON CONFLICT (user_id) DO UPDATE
		SET min_daily_hours = EXCLUDED.min_daily_hours,
			office_start_time = EXCLUDED.office_start_time,
			last_allowed_entry = EXCLUDED.last_allowed_entry,
			first_half_min_hours = EXCLUDED.first_half_min_hours,
			work_days = EXCLUDED.work_days,
			effective_date = EXCLUDED.effective_date,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		p.UserID,
		p.MinDailyHours,
		p.OfficeStartTime,
		p.LastAllowedEntry,
		p.FirstHalfMinHours,
		validator.FormatWorkDays(p.WorkDays),
		p.EffectiveDate,
	).Scan(&p.UpdatedAt)

	if err != nil {
		return policy.AttendancePolicy{}, fmt.Errorf("failed to upsert user settings: %w", err)
	}

	return p, nil
}

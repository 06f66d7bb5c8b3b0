package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hourline-app/hourline-backend-go/internal/domain/attendance"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/database"
)

type dayRecordRepository struct {
	db *database.DB
}

func NewDayRecordRepository(db *database.DB) attendance.DayRecordRepository {
	return &dayRecordRepository{db: db}
}

const dayRecordColumns = `
	id, user_id, date, clock_in, clock_out,
	day_type, late_status, worked_minutes, required_minutes,
	entry_method, edited_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDayRecord(row rowScanner) (attendance.DayRecord, error) {
	var (
		rec        attendance.DayRecord
		dayType    string
		lateStatus *string
		method     string
	)

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&dayType, &lateStatus, &rec.WorkedMinutes, &rec.RequiredMinutes,
		&method, &rec.EditedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.DayRecord{}, err
	}

	rec.DayType = attendance.DayType(dayType)
	rec.EntryMethod = attendance.EntryMethod(method)
	if lateStatus != nil {
		ls := attendance.LateStatus(*lateStatus)
		rec.LateStatus = &ls
	}
	return rec, nil
}

func lateStatusParam(ls *attendance.LateStatus) *string {
	if ls == nil {
		return nil
	}
	s := string(*ls)
	return &s
}

// GetByUserAndDate implements attendance.DayRecordRepository.
func (r *dayRecordRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayRecordColumns + `
		FROM attendance_logs
		WHERE user_id = $1 AND date = $2
	`

	rec, err := scanDayRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day record: %w", err)
	}

	return &rec, nil
}

// ListByUserAndRange implements attendance.DayRecordRepository.
func (r *dayRecordRepository) ListByUserAndRange(ctx context.Context, userID string, start, end *time.Time) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayRecordColumns + `
		FROM attendance_logs
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list day records: %w", err)
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		rec, err := scanDayRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day records: %w", err)
	}

	return records, nil
}

// Create implements attendance.DayRecordRepository.
func (r *dayRecordRepository) Create(ctx context.Context, rec attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_logs (
			id, user_id, date, clock_in, clock_out,
			day_type, late_status, worked_minutes, required_minutes,
			entry_method, edited_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Date,
		rec.ClockIn,
		rec.ClockOut,
		string(rec.DayType),
		lateStatusParam(rec.LateStatus),
		rec.WorkedMinutes,
		rec.RequiredMinutes,
		string(rec.EntryMethod),
		rec.EditedAt,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to create day record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.DayRecordRepository. Every mutable column is
// overwritten, so nil fields clear back to NULL.
func (r *dayRecordRepository) Update(ctx context.Context, rec attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_logs
		SET clock_in = $3,
			clock_out = $4,
			day_type = $5,
			late_status = $6,
			worked_minutes = $7,
			required_minutes = $8,
			entry_method = $9,
			edited_at = $10,
			updated_at = NOW()
		WHERE user_id = $1 AND date = $2
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.UserID,
		rec.Date,
		rec.ClockIn,
		rec.ClockOut,
		string(rec.DayType),
		lateStatusParam(rec.LateStatus),
		rec.WorkedMinutes,
		rec.RequiredMinutes,
		string(rec.EntryMethod),
		rec.EditedAt,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DayRecord{}, fmt.Errorf("day record not found for user %s on %s", rec.UserID, rec.Date.Format("2006-01-02"))
		}
		return attendance.DayRecord{}, fmt.Errorf("failed to update day record: %w", err)
	}

	return rec, nil
}

// ListOpenBefore implements attendance.DayRecordRepository.
func (r *dayRecordRepository) ListOpenBefore(ctx context.Context, date time.Time) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayRecordColumns + `
		FROM attendance_logs
		WHERE date < $1
		  AND clock_in IS NOT NULL
		  AND clock_out IS NULL
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list open day records: %w", err)
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		rec, err := scanDayRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day records: %w", err)
	}

	return records, nil
}

package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hourline-app/hourline-backend-go/internal/domain/attendance"
	"github.com/hourline-app/hourline-backend-go/internal/domain/policy"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/database"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/keylock"
)

// recordState is the per-(user, date) attendance state machine.
//
//	absent      no row
//	placeholder row without a clock-in (manual leave/holiday or pending day)
//	open        clock-in set, clock-out unset
//	closed      both set
//
// The placeholder state is what makes the clock-in conversion rule explicit:
// a leave or holiday row silently becomes a working day when the user clocks
// in, and that is the only path that overwrites a day type implicitly.
type recordState int

const (
	stateAbsent recordState = iota
	statePlaceholder
	stateOpen
	stateClosed
)

func stateOf(rec *attendance.DayRecord) recordState {
	switch {
	case rec == nil:
		return stateAbsent
	case rec.ClockIn == nil:
		return statePlaceholder
	case rec.ClockOut == nil:
		return stateOpen
	default:
		return stateClosed
	}
}

type AttendanceServiceImpl struct {
	attendance.DayRecordRepository
	policies policy.Resolver
	runTx    database.TxRunner
	keys     *keylock.KeyedMutex
	now      func() time.Time
}

func NewAttendanceService(
	recordRepo attendance.DayRecordRepository,
	policies policy.Resolver,
	runTx database.TxRunner,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		DayRecordRepository: recordRepo,
		policies:            policies,
		runTx:               runTx,
		keys:                keylock.New(),
		now:                 time.Now,
	}
}

func (a *AttendanceServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if a.runTx == nil {
		return fn(ctx)
	}
	return a.runTx(ctx, fn)
}

// dateOf truncates an instant to its calendar date, normalized to UTC
// midnight so dates compare with Equal regardless of the source zone.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func lockKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockEventRequest) (attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	ts := req.ParsedTimestamp
	day := dateOf(ts)
	if day.After(dateOf(a.now())) {
		return attendance.DayRecordResponse{}, attendance.ErrFutureDate
	}

	key := lockKey(req.UserID, day)
	a.keys.Lock(key)
	defer a.keys.Unlock(key)

	var result attendance.DayRecordResponse
	err := a.inTx(ctx, func(ctx context.Context) error {
		// Policy is re-read on every call, never snapshotted per day.
		pol, err := a.policies.Resolve(ctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to resolve policy: %w", err)
		}

		rec, err := a.DayRecordRepository.GetByUserAndDate(ctx, req.UserID, day)
		if err != nil {
			return fmt.Errorf("failed to get day record: %w", err)
		}

		lateStatus := ClassifyLateStatus(ts, pol)
		required := RequiredMinutes(attendance.DayTypeWorking, pol)

		switch stateOf(rec) {
		case stateOpen, stateClosed:
			return attendance.ErrAlreadyClockedIn

		case statePlaceholder:
			// placeholder -> open: the pre-existing leave/holiday/pending row
			// becomes a working day.
			rec.ClockIn = &ts
			rec.DayType = attendance.DayTypeWorking
			rec.LateStatus = &lateStatus
			rec.RequiredMinutes = required
			rec.EntryMethod = attendance.EntryMethodAuto

			updated, err := a.DayRecordRepository.Update(ctx, *rec)
			if err != nil {
				return fmt.Errorf("failed to convert day record: %w", err)
			}
			result = mapDayRecordToResponse(updated)
			return nil
		}

		// absent -> open, unless the previous calendar day is still an open
		// working session. That one needs a manual correction first.
		yesterday := day.AddDate(0, 0, -1)
		prev, err := a.DayRecordRepository.GetByUserAndDate(ctx, req.UserID, yesterday)
		if err != nil {
			return fmt.Errorf("failed to get previous day record: %w", err)
		}
		if stateOf(prev) == stateOpen &&
			(prev.DayType == attendance.DayTypeWorking || prev.DayType == attendance.DayTypeHalfDay) {
			return attendance.ErrPriorDayUnclosed
		}

		created, err := a.DayRecordRepository.Create(ctx, attendance.DayRecord{
			UserID:          req.UserID,
			Date:            day,
			ClockIn:         &ts,
			DayType:         attendance.DayTypeWorking,
			LateStatus:      &lateStatus,
			RequiredMinutes: required,
			EntryMethod:     attendance.EntryMethodAuto,
		})
		if err != nil {
			return fmt.Errorf("failed to create day record: %w", err)
		}
		result = mapDayRecordToResponse(created)
		return nil
	})
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	return result, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockEventRequest) (attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	ts := req.ParsedTimestamp
	day := dateOf(ts)

	key := lockKey(req.UserID, day)
	a.keys.Lock(key)
	defer a.keys.Unlock(key)

	var result attendance.DayRecordResponse
	err := a.inTx(ctx, func(ctx context.Context) error {
		rec, err := a.DayRecordRepository.GetByUserAndDate(ctx, req.UserID, day)
		if err != nil {
			return fmt.Errorf("failed to get day record: %w", err)
		}

		switch stateOf(rec) {
		case stateAbsent, statePlaceholder:
			return attendance.ErrNoOpenSession
		case stateClosed:
			return attendance.ErrAlreadyClockedOut
		}

		if !ts.After(*rec.ClockIn) {
			return attendance.ErrOutBeforeIn
		}
		if !sameCalendarDay(*rec.ClockIn, ts) {
			// No midnight rollover or capping; the record stays open for a
			// manual correction instead.
			return attendance.ErrCrossDayBoundary
		}

		worked := WorkedMinutes(*rec.ClockIn, ts)
		rec.ClockOut = &ts
		rec.WorkedMinutes = &worked

		updated, err := a.DayRecordRepository.Update(ctx, *rec)
		if err != nil {
			return fmt.Errorf("failed to close day record: %w", err)
		}
		result = mapDayRecordToResponse(updated)
		return nil
	})
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}

	return result, nil
}

// ManualEntry implements attendance.AttendanceService. It is an idempotent
// upsert: validation happens in order and the first failure wins, before any
// write.
func (a *AttendanceServiceImpl) ManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayRecordResponse{}, err
	}

	day := dateOf(req.ParsedDate)
	dayType := attendance.DayType(req.DayType)

	if day.After(dateOf(a.now())) {
		return attendance.DayRecordResponse{}, attendance.ErrFutureDate
	}
	if req.ParsedClockIn != nil && req.ParsedClockOut != nil &&
		!req.ParsedClockOut.After(*req.ParsedClockIn) {
		return attendance.DayRecordResponse{}, attendance.ErrOutBeforeIn
	}
	if dayType.IsNonWorking() && (req.ParsedClockIn != nil || req.ParsedClockOut != nil) {
		return attendance.DayRecordResponse{}, attendance.ErrTimesOnNonWorkingDay
	}

	key := lockKey(req.UserID, day)
	a.keys.Lock(key)
	defer a.keys.Unlock(key)

	var result attendance.DayRecordResponse
	err := a.inTx(ctx, func(ctx context.Context) error {
		pol, err := a.policies.Resolve(ctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to resolve policy: %w", err)
		}

		existing, err := a.DayRecordRepository.GetByUserAndDate(ctx, req.UserID, day)
		if err != nil {
			return fmt.Errorf("failed to get day record: %w", err)
		}

		// Late status follows the supplied clock-in; without one it stays
		// whatever the existing record says. Lateness is sticky.
		var lateStatus *attendance.LateStatus
		if req.ParsedClockIn != nil {
			ls := ClassifyLateStatus(*req.ParsedClockIn, pol)
			lateStatus = &ls
		} else if existing != nil {
			lateStatus = existing.LateStatus
		}

		var worked *int
		switch {
		case req.ParsedClockIn != nil && req.ParsedClockOut != nil:
			w := WorkedMinutes(*req.ParsedClockIn, *req.ParsedClockOut)
			worked = &w
		case dayType.IsNonWorking():
			zero := 0
			worked = &zero
		}
		// Otherwise the record is pending: a working day with no recorded hours.

		editedAt := a.now()
		rec := attendance.DayRecord{
			UserID:          req.UserID,
			Date:            day,
			ClockIn:         req.ParsedClockIn,
			ClockOut:        req.ParsedClockOut,
			DayType:         dayType,
			LateStatus:      lateStatus,
			WorkedMinutes:   worked,
			RequiredMinutes: RequiredMinutes(dayType, pol),
			EntryMethod:     attendance.EntryMethodManual,
			EditedAt:        &editedAt,
		}

		if existing != nil {
			rec.ID = existing.ID
			rec.CreatedAt = existing.CreatedAt

			updated, err := a.DayRecordRepository.Update(ctx, rec)
			if err != nil {
				return fmt.Errorf("failed to update day record: %w", err)
			}
			result = mapDayRecordToResponse(updated)
			return nil
		}

		created, err := a.DayRecordRepository.Create(ctx, rec)
		if err != nil {
			return fmt.Errorf("failed to create day record: %w", err)
		}
		result = mapDayRecordToResponse(created)
		return nil
	})
	if err != nil {
		return attendance.DayRecordResponse{}, err
	}
	return result, nil
}

// QueryRange implements attendance.AttendanceService. Bounds are inclusive;
// order is not part of the contract.
func (a *AttendanceServiceImpl) QueryRange(ctx context.Context, filter attendance.RangeFilter) ([]attendance.DayRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.DayRecordRepository.ListByUserAndRange(ctx, filter.UserID, filter.ParsedStart, filter.ParsedEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list day records: %w", err)
	}

	responses := make([]attendance.DayRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapDayRecordToResponse(rec))
	}
	return responses, nil
}

// Summarize implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summarize(ctx context.Context, filter attendance.RangeFilter) (attendance.RangeSummary, error) {
	if err := filter.Validate(); err != nil {
		return attendance.RangeSummary{}, err
	}

	records, err := a.DayRecordRepository.ListByUserAndRange(ctx, filter.UserID, filter.ParsedStart, filter.ParsedEnd)
	if err != nil {
		return attendance.RangeSummary{}, fmt.Errorf("failed to list day records: %w", err)
	}

	summary := attendance.RangeSummary{RecordCount: len(records)}
	for _, rec := range records {
		if rec.WorkedMinutes != nil {
			summary.TotalWorkedMinutes += *rec.WorkedMinutes
		}
		summary.TotalRequiredMinutes += rec.RequiredMinutes

		if rec.LateStatus != nil {
			switch *rec.LateStatus {
			case attendance.LateStatusLate:
				summary.LateCount++
			case attendance.LateStatusViolation:
				summary.ViolationCount++
			}
		}

		if rec.DayType == attendance.DayTypeWorking && rec.WorkedMinutes == nil {
			summary.PendingDays++
		}
	}
	return summary, nil
}

// mapDayRecordToResponse converts a DayRecord entity to DayRecordResponse.
func mapDayRecordToResponse(rec attendance.DayRecord) attendance.DayRecordResponse {
	var lateStatus *string
	if rec.LateStatus != nil {
		s := string(*rec.LateStatus)
		lateStatus = &s
	}

	return attendance.DayRecordResponse{
		ID:              rec.ID,
		UserID:          rec.UserID,
		Date:            rec.Date.Format("2006-01-02"),
		ClockIn:         timePtrToString(rec.ClockIn),
		ClockOut:        timePtrToString(rec.ClockOut),
		DayType:         string(rec.DayType),
		LateStatus:      lateStatus,
		WorkedMinutes:   rec.WorkedMinutes,
		RequiredMinutes: rec.RequiredMinutes,
		EntryMethod:     string(rec.EntryMethod),
		EditedAt:        timePtrToString(rec.EditedAt),
		CreatedAt:       rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       rec.UpdatedAt.Format(time.RFC3339),
	}
}

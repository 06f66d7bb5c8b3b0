package response

import (
	"errors"
	"net/http"

	"github.com/hourline-app/hourline-backend-go/internal/domain/attendance"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Each sentinel gets a
// stable machine-readable code so clients can branch without parsing
// messages.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrFutureDate):
		Error(w, http.StatusBadRequest, "FUTURE_DATE", "Date cannot be in the future")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Error(w, http.StatusConflict, "ALREADY_CLOCKED_IN", "A session already exists for this date")
	case errors.Is(err, attendance.ErrPriorDayUnclosed):
		Error(w, http.StatusForbidden, "PRIOR_DAY_UNCLOSED", "Previous day has an unclosed session; submit a manual correction first")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Error(w, http.StatusNotFound, "NO_OPEN_SESSION", "No open session found for this date")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Error(w, http.StatusConflict, "ALREADY_CLOCKED_OUT", "Session is already closed")
	case errors.Is(err, attendance.ErrOutBeforeIn):
		Error(w, http.StatusBadRequest, "OUT_BEFORE_IN", "Clock-out must be after clock-in")
	case errors.Is(err, attendance.ErrCrossDayBoundary):
		Error(w, http.StatusBadRequest, "CROSS_DAY_BOUNDARY", "Clock-out must be on the same calendar day as clock-in")
	case errors.Is(err, attendance.ErrTimesOnNonWorkingDay):
		Error(w, http.StatusBadRequest, "TIMES_ON_NON_WORKING_DAY", "Leave and holiday entries cannot carry clock times")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

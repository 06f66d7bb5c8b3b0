package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hourline-app/hourline-backend-go/internal/domain/attendance"
	"github.com/hourline-app/hourline-backend-go/internal/handler/http/middleware"
	"github.com/hourline-app/hourline-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ManualEntry(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req attendance.ClockEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode clock-in body", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	// Identity always comes from the verified token, never the body.
	req.UserID = userID

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req attendance.ClockEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode clock-out body", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.UserID = userID

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", result)
}

// ManualEntry implements AttendanceHandler.
func (h *attendanceHandlerImpl) ManualEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req attendance.ManualEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode manual entry body", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.UserID = userID

	result, err := h.attendanceService.ManualEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record saved", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	result, err := h.attendanceService.QueryRange(r.Context(), rangeFilterFromQuery(r, userID))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	result, err := h.attendanceService.Summarize(r.Context(), rangeFilterFromQuery(r, userID))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func rangeFilterFromQuery(r *http.Request, userID string) attendance.RangeFilter {
	filter := attendance.RangeFilter{UserID: userID}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	return filter
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hourline-app/hourline-backend-go/internal/domain/policy"
	"github.com/hourline-app/hourline-backend-go/internal/handler/http/middleware"
	"github.com/hourline-app/hourline-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	policyService policy.PolicyService
}

func NewSettingsHandler(policyService policy.PolicyService) SettingsHandler {
	return &settingsHandlerImpl{
		policyService: policyService,
	}
}

// Get implements SettingsHandler. Users who never saved settings see the
// defaults.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	result, err := h.policyService.Get(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SettingsHandler.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req policy.UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode settings body", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.UserID = userID

	result, err := h.policyService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", result)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medifind/internal/delivery/dto"
	"medifind/internal/usecase"
	"medifind/pkg/response"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
	}
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Session retrieved successfully", h.sessionUsecase.GetSession())
}

// Login godoc
// @Summary Log in
// @Description Store the user's basic details and start onboarding
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /session/login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.sessionUsecase.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to log in")
		return
	}

	response.Success(w, http.StatusOK, persistedMessage("Logged in successfully", result.Persisted), result)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessionUsecase.Logout(r.Context())
	if err != nil {
		writeError(w, err, "Failed to log out")
		return
	}

	response.Success(w, http.StatusOK, persistedMessage("Logged out successfully", result.Persisted), result)
}

func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	persisted, err := h.sessionUsecase.UpdateProfile(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to update profile")
		return
	}

	result := &dto.SessionMutationResponse{
		Session:   h.sessionUsecase.GetSession(),
		Persisted: persisted,
	}
	response.Success(w, http.StatusOK, persistedMessage("Profile updated successfully", persisted), result)
}

func (h *SessionHandler) UpdateHealthDetails(w http.ResponseWriter, r *http.Request) {
	var req dto.HealthDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.sessionUsecase.UpdateHealthDetails(r.Context(), &req)
	if err != nil {
		h.writeSessionError(w, err, "Failed to update health details")
		return
	}

	response.Success(w, http.StatusOK, persistedMessage("Health details saved", result.Persisted), result)
}

func (h *SessionHandler) SkipHealthDetails(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessionUsecase.SkipHealthDetails(r.Context())
	if err != nil {
		h.writeSessionError(w, err, "Failed to skip health details")
		return
	}

	response.Success(w, http.StatusOK, persistedMessage("Health details skipped", result.Persisted), result)
}

func (h *SessionHandler) TriggerLoginPrompt(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Login prompt opened", h.sessionUsecase.TriggerLoginPrompt())
}

func (h *SessionHandler) CloseLoginPrompt(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Login prompt closed", h.sessionUsecase.CloseLoginPrompt())
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrNoActiveSession):
		response.Unauthorized(w, "Please log in first")
	default:
		writeError(w, err, fallback)
	}
}

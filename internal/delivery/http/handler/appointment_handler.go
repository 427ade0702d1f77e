package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medifind/internal/delivery/dto"
	"medifind/internal/usecase"
	"medifind/pkg/response"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
	}
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAppointments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Description Create a pending appointment with a doctor
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, persistedMessage("Appointment booked successfully", result.Persisted), result)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.appointmentUsecase.UpdateAppointment(r.Context(), vars["id"], &req)
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to update appointment")
		return
	}

	h.writeMutation(w, result, "Appointment updated successfully")
}

func (h *AppointmentHandler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.appointmentUsecase.ConfirmAppointment(r.Context(), vars["id"])
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to confirm appointment")
		return
	}

	h.writeMutation(w, result, "Appointment confirmed")
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.appointmentUsecase.CancelAppointment(r.Context(), vars["id"])
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to cancel appointment")
		return
	}

	h.writeMutation(w, result, "Appointment cancelled")
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.appointmentUsecase.DeleteAppointment(r.Context(), vars["id"])
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to delete appointment")
		return
	}

	h.writeMutation(w, result, "Appointment deleted")
}

// writeMutation answers 200 with found=false for unknown ids; nothing was
// changed and that is not an error.
func (h *AppointmentHandler) writeMutation(w http.ResponseWriter, result *dto.AppointmentMutationResponse, message string) {
	if !result.Found {
		response.Success(w, http.StatusOK, "Appointment not found, nothing changed", result)
		return
	}
	response.Success(w, http.StatusOK, persistedMessage(message, result.Persisted), result)
}

func (h *AppointmentHandler) writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	default:
		writeError(w, err, fallback)
	}
}

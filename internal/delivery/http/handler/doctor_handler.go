package handler

import (
	"errors"
	"net/http"

	"medifind/internal/delivery/dto"
	"medifind/internal/usecase"
	"medifind/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

// GetDoctors godoc
// @Summary List doctors
// @Description List the doctor directory with displayed ratings, optionally filtered
// @Tags Doctors
// @Produce json
// @Param search query string false "Matches name, bio or location"
// @Param specialty query string false "Exact specialty"
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	filter := &dto.DoctorFilterRequest{
		Search:    r.URL.Query().Get("search"),
		Specialty: r.URL.Query().Get("specialty"),
	}

	doctors, err := h.doctorUsecase.GetDoctors(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to get doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors.Doctors, &response.Meta{Total: doctors.Total})
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), vars["id"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			writeError(w, err, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.doctorUsecase.GetSpecialties(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

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

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
	}
}

func (h *MedicineHandler) GetMedicines(w http.ResponseWriter, r *http.Request) {
	filter := &dto.MedicineFilterRequest{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	medicines, err := h.medicineUsecase.GetMedicines(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to get medicines")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Medicines retrieved successfully", medicines.Medicines, &response.Meta{Total: medicines.Total})
}

func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	medicine, err := h.medicineUsecase.GetMedicine(r.Context(), vars["id"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMedicineNotFound):
			response.NotFound(w, "Medicine not found")
		default:
			writeError(w, err, "Failed to get medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

func (h *MedicineHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.medicineUsecase.GetCategories(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get categories")
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

// UpdateStock godoc
// @Summary Update pharmacy stock
// @Description Set the stock of one medicine at one pharmacy
// @Tags Medicines
// @Accept json
// @Produce json
// @Param id path string true "Medicine ID"
// @Param pharmacyId path string true "Pharmacy ID"
// @Param request body dto.UpdateStockRequest true "New stock"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicines/{id}/pharmacies/{pharmacyId}/stock [put]
func (h *MedicineHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationError(w, map[string]string{"stock": "stock must be a non-negative integer"})
		return
	}

	result, err := h.medicineUsecase.UpdateStock(r.Context(), vars["id"], vars["pharmacyId"], &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMedicineNotFound):
			response.NotFound(w, "Medicine not found")
		case errors.Is(err, usecase.ErrPharmacyNotFound):
			response.NotFound(w, "Pharmacy not found for this medicine")
		default:
			writeError(w, err, "Failed to update stock")
		}
		return
	}

	response.Success(w, http.StatusOK, persistedMessage("Stock updated successfully", result.Persisted), result)
}

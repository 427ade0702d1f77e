package handler

import (
	"net/http"

	"medifind/internal/delivery/dto"
	"medifind/internal/usecase"
	"medifind/pkg/response"
)

type SymptomHandler struct {
	recommendationUsecase usecase.RecommendationUsecase
}

func NewSymptomHandler(recommendationUsecase usecase.RecommendationUsecase) *SymptomHandler {
	return &SymptomHandler{
		recommendationUsecase: recommendationUsecase,
	}
}

func (h *SymptomHandler) GetSymptoms(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Symptoms retrieved successfully", h.recommendationUsecase.GetSymptomCatalog())
}

func (h *SymptomHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties := &dto.SpecialtyListResponse{
		Specialties: h.recommendationUsecase.GetSpecialtiesForSymptoms(symptomIDs(r)),
	}
	response.Success(w, http.StatusOK, "Specialties resolved successfully", specialties)
}

// GetRecommendations godoc
// @Summary Recommend doctors for symptoms
// @Description Resolve symptoms to specialties and return the top rated matching doctors
// @Tags Symptoms
// @Produce json
// @Param ids query string false "Comma separated symptom ids"
// @Success 200 {object} response.Response
// @Router /symptoms/recommendations [get]
func (h *SymptomHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	recommendations, err := h.recommendationUsecase.RecommendDoctors(r.Context(), symptomIDs(r))
	if err != nil {
		writeError(w, err, "Failed to recommend doctors")
		return
	}

	response.Success(w, http.StatusOK, "Recommendations retrieved successfully", recommendations)
}

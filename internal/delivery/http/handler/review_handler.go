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

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
	}
}

func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reviews, err := h.reviewUsecase.GetReviews(r.Context(), vars["id"])
	if err != nil {
		writeError(w, err, "Failed to get reviews")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Reviews retrieved successfully", reviews.Reviews, &response.Meta{Total: reviews.Total})
}

// CreateReview godoc
// @Summary Add a review
// @Description Add a review to a doctor and return the recomputed rating
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err, map[string]string{
			"rating": "rating must be a whole number between 1 and 5",
		})
		return
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), vars["id"], &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			writeError(w, err, "Failed to create review")
		}
		return
	}

	response.Success(w, http.StatusCreated, persistedMessage("Review added successfully", review.Persisted), review)
}

// persistedMessage warns the caller when a change only lives in memory.
func persistedMessage(ok string, persisted bool) string {
	if persisted {
		return ok
	}
	return ok + ", but it could not be saved and may be lost on restart"
}

package converter

import (
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
)

func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	return &dto.ReviewResponse{
		ID:           review.ID,
		DoctorID:     review.DoctorID,
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		Date:         review.Date,
	}
}

func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *ReviewToResponse(&reviews[i])
	}
	return responses
}

package dto

import "time"

// Request DTOs

type CreateReviewRequest struct {
	ReviewerName string `json:"reviewer_name" validate:"notblank"`
	Rating       int    `json:"rating" validate:"gte=1,lte=5"`
	Comment      string `json:"comment" validate:"notblank"`
}

// Response DTOs

type ReviewResponse struct {
	ID           string    `json:"id"`
	DoctorID     string    `json:"doctor_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}

type CreateReviewResponse struct {
	Review    ReviewResponse  `json:"review"`
	Doctor    *DoctorResponse `json:"doctor"`
	Persisted bool            `json:"persisted"`
}

package usecase

import (
	"context"
	"strings"
	"time"

	"medifind/internal/converter"
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"
	"medifind/pkg/apperror"
	"medifind/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ReviewUsecase interface {
	GetReviews(ctx context.Context, doctorID string) (*dto.ReviewListResponse, error)
	CreateReview(ctx context.Context, doctorID string, req *dto.CreateReviewRequest) (*dto.CreateReviewResponse, error)
}

type reviewUsecase struct {
	log        *logrus.Logger
	validator  *validator.CustomValidator
	reviewRepo repository.ReviewRepository
	doctorRepo repository.DoctorRepository
	ratings    *ratingOverlay
	now        func() time.Time
}

func NewReviewUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	reviewRepo repository.ReviewRepository,
	doctorRepo repository.DoctorRepository,
) ReviewUsecase {
	return &reviewUsecase{
		log:        log,
		validator:  validator,
		reviewRepo: reviewRepo,
		doctorRepo: doctorRepo,
		ratings:    &ratingOverlay{log: log, reviewRepo: reviewRepo},
		now:        time.Now,
	}
}

// GetReviews returns a doctor's reviews newest first. Unknown doctors
// simply have none.
func (u *reviewUsecase) GetReviews(ctx context.Context, doctorID string) (*dto.ReviewListResponse, error) {
	reviews, err := u.reviewRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find reviews for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   len(reviews),
	}, nil
}

// CreateReview validates and stores a review, then returns it along with the
// doctor's recomputed displayed rating.
func (u *reviewUsecase) CreateReview(ctx context.Context, doctorID string, req *dto.CreateReviewRequest) (*dto.CreateReviewResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("doctor", doctorID, ErrDoctorNotFound)
	}

	review := &entity.Review{
		ID:           uuid.NewString(),
		DoctorID:     doctorID,
		ReviewerName: strings.TrimSpace(req.ReviewerName),
		Rating:       req.Rating,
		Comment:      strings.TrimSpace(req.Comment),
		Date:         u.now().UTC(),
	}

	persisted := true
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		if !apperror.IsNotPersisted(err) {
			u.log.Warnf("Failed to create review for doctor %s: %+v", doctorID, err)
			return nil, err
		}
		persisted = false
	}

	shown, err := u.ratings.apply(ctx, *doctor)
	if err != nil {
		return nil, err
	}

	u.log.Infof("Review created: id=%s, doctor=%s, rating=%d", review.ID, doctorID, review.Rating)
	return &dto.CreateReviewResponse{
		Review:    *converter.ReviewToResponse(review),
		Doctor:    converter.DoctorToResponse(&shown),
		Persisted: persisted,
	}, nil
}

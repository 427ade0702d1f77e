package usecase

import (
	"context"

	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ratingOverlay computes displayed ratings from stored reviews without
// touching the base doctor records.
type ratingOverlay struct {
	log        *logrus.Logger
	reviewRepo repository.ReviewRepository
}

func (o *ratingOverlay) apply(ctx context.Context, doctor entity.Doctor) (entity.Doctor, error) {
	reviews, err := o.reviewRepo.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		o.log.Warnf("Failed to load reviews for doctor %s: %+v", doctor.ID, err)
		return doctor, err
	}
	if summary, ok := entity.SummarizeReviews(reviews); ok {
		return summary.ApplyTo(doctor), nil
	}
	return doctor, nil
}

func (o *ratingOverlay) applyAll(ctx context.Context, doctors []entity.Doctor) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, len(doctors))
	for i, d := range doctors {
		shown, err := o.apply(ctx, d)
		if err != nil {
			return nil, err
		}
		out[i] = shown
	}
	return out, nil
}

package repository

import (
	"context"
	"sort"
	"sync"

	"medifind/internal/domain/entity"
	domainRepo "medifind/internal/domain/repository"
	"medifind/internal/store"

	"github.com/sirupsen/logrus"
)

type reviewRepository struct {
	store *store.Store
	log   *logrus.Logger
	mu    sync.Mutex
}

func NewReviewRepository(store *store.Store, log *logrus.Logger) domainRepo.ReviewRepository {
	return &reviewRepository{store: store, log: log}
}

func (r *reviewRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read(ctx, doctorID)
}

// Create prepends the review and persists the list newest first. On a
// persistence failure the review is still visible to later reads.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.read(ctx, review.DoctorID)
	if err != nil {
		return err
	}

	reviews = append([]entity.Review{*review}, reviews...)
	sortNewestFirst(reviews)

	return r.store.Write(ctx, ReviewsKey(review.DoctorID), reviews)
}

func (r *reviewRepository) read(ctx context.Context, doctorID string) ([]entity.Review, error) {
	var reviews []entity.Review
	found, err := r.store.Read(ctx, ReviewsKey(doctorID), &reviews)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entity.Review{}, nil
	}
	sortNewestFirst(reviews)
	return reviews, nil
}

func sortNewestFirst(reviews []entity.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Date.After(reviews[j].Date)
	})
}

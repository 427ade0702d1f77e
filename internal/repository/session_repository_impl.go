package repository

import (
	"context"

	"medifind/internal/domain/entity"
	domainRepo "medifind/internal/domain/repository"
	"medifind/internal/store"
)

type sessionRepository struct {
	store *store.Store
}

func NewSessionRepository(store *store.Store) domainRepo.SessionRepository {
	return &sessionRepository{store: store}
}

// Find returns nil, nil when no user is logged in.
func (r *sessionRepository) Find(ctx context.Context) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	found, err := r.store.Read(ctx, KeyUser, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

func (r *sessionRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	return r.store.Write(ctx, KeyUser, profile)
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	return r.store.Remove(ctx, KeyUser)
}

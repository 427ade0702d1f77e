package repository

import (
	"context"

	"medifind/internal/domain/entity"
)

type SessionRepository interface {
	Find(ctx context.Context) (*entity.UserProfile, error)
	Save(ctx context.Context, profile *entity.UserProfile) error
	Delete(ctx context.Context) error
}

package repository

import (
	"context"

	"medifind/internal/domain/entity"
)

type ReviewRepository interface {
	// FindByDoctorID returns reviews newest first.
	FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error
}

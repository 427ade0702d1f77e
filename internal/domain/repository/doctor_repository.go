package repository

import (
	"context"

	"medifind/internal/domain/entity"
)

type DoctorRepository interface {
	// Migrate seeds the catalog when the store holds none and backfills
	// missing ids. It is safe to call repeatedly.
	Migrate(ctx context.Context) error
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
}

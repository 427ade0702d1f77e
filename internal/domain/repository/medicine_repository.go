package repository

import (
	"context"

	"medifind/internal/domain/entity"
)

type MedicineRepository interface {
	Migrate(ctx context.Context) error
	FindAll(ctx context.Context) ([]entity.Medicine, error)
	FindByID(ctx context.Context, id string) (*entity.Medicine, error)
	// Update applies fn to the medicine under lock and persists the whole
	// catalog. It returns nil, nil when id does not resolve; an error from
	// fn aborts without writing.
	Update(ctx context.Context, id string, fn func(*entity.Medicine) error) (*entity.Medicine, error)
}

package repository

import (
	"context"

	"medifind/internal/domain/entity"
)

type AppointmentRepository interface {
	// FindAll returns appointments sorted ascending by date.
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, id string, fn func(*entity.Appointment) error) (*entity.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

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

type appointmentRepository struct {
	store *store.Store
	log   *logrus.Logger
	mu    sync.Mutex
}

func NewAppointmentRepository(store *store.Store, log *logrus.Logger) domainRepo.AppointmentRepository {
	return &appointmentRepository{store: store, log: log}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read(ctx)
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments, err := r.read(ctx)
	if err != nil {
		return err
	}

	appointments = append(appointments, *appointment)
	return r.write(ctx, appointments)
}

func (r *appointmentRepository) Update(ctx context.Context, id string, fn func(*entity.Appointment) error) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range appointments {
		if appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	if err := fn(&appointments[idx]); err != nil {
		return nil, err
	}

	updated := appointments[idx]
	return &updated, r.write(ctx, appointments)
}

// Delete removes the appointment for good. It reports false when id is unknown.
func (r *appointmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments, err := r.read(ctx)
	if err != nil {
		return false, err
	}

	kept := appointments[:0]
	for _, a := range appointments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(appointments) {
		return false, nil
	}

	return true, r.write(ctx, kept)
}

func (r *appointmentRepository) read(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	found, err := r.store.Read(ctx, KeyAppointments, &appointments)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entity.Appointment{}, nil
	}
	sortByDate(appointments)
	return appointments, nil
}

func (r *appointmentRepository) write(ctx context.Context, appointments []entity.Appointment) error {
	sortByDate(appointments)
	return r.store.Write(ctx, KeyAppointments, appointments)
}

// Dates are YYYY-MM-DD so string order is calendar order.
func sortByDate(appointments []entity.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Date < appointments[j].Date
	})
}

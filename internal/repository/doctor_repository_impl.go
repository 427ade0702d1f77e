package repository

import (
	"context"
	"sync"

	"medifind/internal/catalog"
	"medifind/internal/domain/entity"
	domainRepo "medifind/internal/domain/repository"
	"medifind/internal/store"
	"medifind/pkg/apperror"

	"github.com/sirupsen/logrus"
)

type doctorRepository struct {
	store *store.Store
	log   *logrus.Logger
	mu    sync.Mutex
}

func NewDoctorRepository(store *store.Store, log *logrus.Logger) domainRepo.DoctorRepository {
	return &doctorRepository{store: store, log: log}
}

func (r *doctorRepository) Migrate(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.load(ctx)
	return err
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doctors, err := r.load(ctx)
	if err != nil && !apperror.IsNotPersisted(err) {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	doctors, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i], nil
		}
	}
	return nil, nil
}

// load reads the catalog, seeding it when absent or empty and backfilling
// ids on records that lack one. A non-nil error alongside a non-nil slice
// means the catalog is usable but was not persisted.
func (r *doctorRepository) load(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	found, err := r.store.Read(ctx, KeyDoctors, &doctors)
	if err != nil {
		return nil, err
	}

	if !found || len(doctors) == 0 {
		doctors = catalog.Doctors()
		r.log.Infof("Seeding %d doctors into %s", len(doctors), KeyDoctors)
		return doctors, r.store.Write(ctx, KeyDoctors, doctors)
	}

	backfilled := 0
	for i := range doctors {
		if doctors[i].ID == "" {
			d := &doctors[i]
			d.ID = stableID(d.Name, d.Specialty, d.Location)
			backfilled++
		}
	}
	if backfilled > 0 {
		r.log.Infof("Backfilled %d doctor ids", backfilled)
		return doctors, r.store.Write(ctx, KeyDoctors, doctors)
	}

	return doctors, nil
}

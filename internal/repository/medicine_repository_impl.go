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

type medicineRepository struct {
	store *store.Store
	log   *logrus.Logger
	mu    sync.Mutex
}

func NewMedicineRepository(store *store.Store, log *logrus.Logger) domainRepo.MedicineRepository {
	return &medicineRepository{store: store, log: log}
}

func (r *medicineRepository) Migrate(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.load(ctx)
	return err
}

func (r *medicineRepository) FindAll(ctx context.Context) ([]entity.Medicine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	medicines, err := r.load(ctx)
	if err != nil && !apperror.IsNotPersisted(err) {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) FindByID(ctx context.Context, id string) (*entity.Medicine, error) {
	medicines, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range medicines {
		if medicines[i].ID == id {
			return &medicines[i], nil
		}
	}
	return nil, nil
}

func (r *medicineRepository) Update(ctx context.Context, id string, fn func(*entity.Medicine) error) (*entity.Medicine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	medicines, err := r.load(ctx)
	if err != nil && !apperror.IsNotPersisted(err) {
		return nil, err
	}

	idx := -1
	for i := range medicines {
		if medicines[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	if err := fn(&medicines[idx]); err != nil {
		return nil, err
	}

	updated := medicines[idx]
	return &updated, r.store.Write(ctx, KeyMedicines, medicines)
}

func (r *medicineRepository) load(ctx context.Context) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	found, err := r.store.Read(ctx, KeyMedicines, &medicines)
	if err != nil {
		return nil, err
	}

	if !found || len(medicines) == 0 {
		medicines = catalog.Medicines()
		r.log.Infof("Seeding %d medicines into %s", len(medicines), KeyMedicines)
		return medicines, r.store.Write(ctx, KeyMedicines, medicines)
	}

	if backfillMedicineIDs(medicines) {
		r.log.Info("Backfilled missing medicine or pharmacy ids")
		return medicines, r.store.Write(ctx, KeyMedicines, medicines)
	}

	return medicines, nil
}

func backfillMedicineIDs(medicines []entity.Medicine) bool {
	changed := false
	for i := range medicines {
		m := &medicines[i]
		if m.ID == "" {
			m.ID = stableID(m.Name, m.Manufacturer, m.Category)
			changed = true
		}
		for j := range m.Availability {
			a := &m.Availability[j]
			if a.PharmacyID == "" {
				a.PharmacyID = stableID(m.ID, a.PharmacyName, a.Location)
				changed = true
			}
		}
	}
	return changed
}

package usecase

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"medifind/internal/domain/repository"
	"medifind/internal/infrastructure/storage"
	repoImpl "medifind/internal/repository"
	"medifind/internal/store"
	"medifind/pkg/validator"

	"github.com/sirupsen/logrus"
)

// flakyBackend refuses writes and removals while failWrites is set.
type flakyBackend struct {
	*storage.MemoryBackend
	failWrites atomic.Bool
}

func (b *flakyBackend) Set(ctx context.Context, key string, value []byte) error {
	if b.failWrites.Load() {
		return errors.New("quota exceeded")
	}
	return b.MemoryBackend.Set(ctx, key, value)
}

func (b *flakyBackend) Del(ctx context.Context, key string) error {
	if b.failWrites.Load() {
		return errors.New("quota exceeded")
	}
	return b.MemoryBackend.Del(ctx, key)
}

type testDeps struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	backend         *flakyBackend
	store           *store.Store
	doctorRepo      repository.DoctorRepository
	reviewRepo      repository.ReviewRepository
	medicineRepo    repository.MedicineRepository
	appointmentRepo repository.AppointmentRepository
	sessionRepo     repository.SessionRepository
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	backend := &flakyBackend{MemoryBackend: storage.NewMemoryBackend()}
	s := store.New(backend, "", log)

	return &testDeps{
		log:             log,
		validator:       validator.NewValidator(),
		backend:         backend,
		store:           s,
		doctorRepo:      repoImpl.NewDoctorRepository(s, log),
		reviewRepo:      repoImpl.NewReviewRepository(s, log),
		medicineRepo:    repoImpl.NewMedicineRepository(s, log),
		appointmentRepo: repoImpl.NewAppointmentRepository(s, log),
		sessionRepo:     repoImpl.NewSessionRepository(s),
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

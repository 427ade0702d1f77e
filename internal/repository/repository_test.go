package repository

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"medifind/internal/domain/entity"
	"medifind/internal/infrastructure/storage"
	"medifind/internal/store"
	"medifind/pkg/apperror"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// flakyBackend wraps the memory backend and refuses writes while failWrites is set.
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

func newTestStore() (*store.Store, *flakyBackend) {
	backend := &flakyBackend{MemoryBackend: storage.NewMemoryBackend()}
	return store.New(backend, "", quietLogger()), backend
}

func TestDoctorRepository_SeedsOnceAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, backend := newTestStore()
	repo := NewDoctorRepository(s, quietLogger())

	first, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 18)
	assert.Equal(t, "doc_k_001", first[0].ID)

	raw1, found, err := backend.Get(ctx, KeyDoctors)
	require.NoError(t, err)
	require.True(t, found)

	for i := 0; i < 3; i++ {
		again, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	raw2, _, err := backend.Get(ctx, KeyDoctors)
	require.NoError(t, err)
	assert.Equal(t, raw1, raw2)
}

func TestDoctorRepository_BackfillsMissingIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	legacy := []entity.Doctor{
		{ID: "doc_k_001", Name: "Dr. Priya Sharma", Specialty: "Cardiologist"},
		{Name: "Dr. No Id", Specialty: "Dentist", Location: "Mysore", Rating: 4.2, Reviews: 10},
	}
	require.NoError(t, s.Write(ctx, KeyDoctors, legacy))

	repo := NewDoctorRepository(s, quietLogger())
	doctors, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "doc_k_001", doctors[0].ID)
	assert.NotEmpty(t, doctors[1].ID)
	assert.Equal(t, 4.2, doctors[1].Rating)

	// A second process derives the same id.
	other := NewDoctorRepository(s, quietLogger())
	got, err := other.FindByID(ctx, doctors[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Dr. No Id", got.Name)
	assert.Equal(t, stableID("Dr. No Id", "Dentist", "Mysore"), got.ID)
}

func TestDoctorRepository_FindByIDMissing(t *testing.T) {
	s, _ := newTestStore()
	repo := NewDoctorRepository(s, quietLogger())

	got, err := repo.FindByID(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDoctorRepository_SeedSurvivesWriteFailure(t *testing.T) {
	s, backend := newTestStore()
	backend.failWrites.Store(true)
	repo := NewDoctorRepository(s, quietLogger())

	err := repo.Migrate(context.Background())
	assert.True(t, apperror.IsNotPersisted(err))

	doctors, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, doctors, 18)
}

func TestMedicineRepository_SeedAndBackfill(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	repo := NewMedicineRepository(s, quietLogger())

	medicines, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, medicines, 10)
	assert.Equal(t, "ph_k_001_1", medicines[0].Availability[0].PharmacyID)

	legacy := []entity.Medicine{{
		Name:         "Legacy",
		Availability: []entity.Availability{{PharmacyName: "Corner", Stock: 3}},
	}}
	require.NoError(t, s.Write(ctx, KeyMedicines, legacy))

	medicines, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, medicines, 1)
	assert.NotEmpty(t, medicines[0].ID)
	assert.NotEmpty(t, medicines[0].Availability[0].PharmacyID)
	assert.Equal(t, 3, medicines[0].Availability[0].Stock)
}

func TestMedicineRepository_Update(t *testing.T) {
	ctx := context.Background()
	s, backend := newTestStore()
	repo := NewMedicineRepository(s, quietLogger())

	updated, err := repo.Update(ctx, "med_k_001", func(m *entity.Medicine) error {
		m.FindAvailability("ph_k_001_2").Stock = 0
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 75, updated.TotalStock())

	missing, err := repo.Update(ctx, "nope", func(*entity.Medicine) error { return nil })
	assert.NoError(t, err)
	assert.Nil(t, missing)

	abort := errors.New("abort")
	_, err = repo.Update(ctx, "med_k_001", func(m *entity.Medicine) error {
		m.Availability[0].Stock = 999
		return abort
	})
	assert.ErrorIs(t, err, abort)

	got, err := repo.FindByID(ctx, "med_k_001")
	require.NoError(t, err)
	assert.Equal(t, 75, got.Availability[0].Stock)

	backend.failWrites.Store(true)
	updated, err = repo.Update(ctx, "med_k_001", func(m *entity.Medicine) error {
		m.Availability[0].Stock = 1
		return nil
	})
	assert.True(t, apperror.IsNotPersisted(err))
	require.NotNil(t, updated)
	got, err = repo.FindByID(ctx, "med_k_001")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Availability[0].Stock)
}

func TestReviewRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	repo := NewReviewRepository(s, quietLogger())

	empty, err := repo.FindByDoctorID(ctx, "doc_k_001")
	require.NoError(t, err)
	assert.Empty(t, empty)

	base := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Review{ID: "r1", DoctorID: "doc_k_001", Rating: 4, Date: base}))
	require.NoError(t, repo.Create(ctx, &entity.Review{ID: "r2", DoctorID: "doc_k_001", Rating: 5, Date: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Review{ID: "r0", DoctorID: "doc_k_001", Rating: 3, Date: base.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Review{ID: "x1", DoctorID: "doc_k_002", Rating: 1, Date: base}))

	reviews, err := repo.FindByDoctorID(ctx, "doc_k_001")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, []string{"r2", "r1", "r0"}, []string{reviews[0].ID, reviews[1].ID, reviews[2].ID})
}

func TestAppointmentRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	repo := NewAppointmentRepository(s, quietLogger())

	require.NoError(t, repo.Create(ctx, &entity.Appointment{ID: "a2", Date: "2026-11-02", Status: entity.AppointmentStatusPending}))
	require.NoError(t, repo.Create(ctx, &entity.Appointment{ID: "a1", Date: "2026-10-20", Status: entity.AppointmentStatusPending}))
	require.NoError(t, repo.Create(ctx, &entity.Appointment{ID: "a3", Date: "2026-11-02", Status: entity.AppointmentStatusPending}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, []string{all[0].ID, all[1].ID, all[2].ID})

	updated, err := repo.Update(ctx, "a2", func(a *entity.Appointment) error {
		a.Confirm()
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.IsConfirmed())

	none, err := repo.Update(ctx, "zz", func(a *entity.Appointment) error { return nil })
	assert.NoError(t, err)
	assert.Nil(t, none)

	deleted, err := repo.Delete(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a2", all[0].ID)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	repo := NewSessionRepository(s)

	profile, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, repo.Save(ctx, &entity.UserProfile{Name: "Asha", Age: "34"}))
	profile, err = repo.Find(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Asha", profile.Name)

	require.NoError(t, repo.Delete(ctx))
	profile, err = repo.Find(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

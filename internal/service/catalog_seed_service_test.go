package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"medifind/internal/domain/entity"
	"medifind/internal/infrastructure/storage"
	repoImpl "medifind/internal/repository"
	"medifind/internal/store"
	"medifind/pkg/apperror"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type MockMedicineRepository struct {
	mock.Mock
}

func (m *MockMedicineRepository) Migrate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockMedicineRepository) FindAll(ctx context.Context) ([]entity.Medicine, error) {
	args := m.Called(ctx)
	medicines, _ := args.Get(0).([]entity.Medicine)
	return medicines, args.Error(1)
}

func (m *MockMedicineRepository) FindByID(ctx context.Context, id string) (*entity.Medicine, error) {
	args := m.Called(ctx, id)
	medicine, _ := args.Get(0).(*entity.Medicine)
	return medicine, args.Error(1)
}

func (m *MockMedicineRepository) Update(ctx context.Context, id string, fn func(*entity.Medicine) error) (*entity.Medicine, error) {
	args := m.Called(ctx, id, fn)
	medicine, _ := args.Get(0).(*entity.Medicine)
	return medicine, args.Error(1)
}

func TestCatalogSeedService_SeedsBothCatalogs(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	s := store.New(backend, "", quietLogger())
	svc := NewCatalogSeedService(quietLogger(), repoImpl.NewDoctorRepository(s, quietLogger()), repoImpl.NewMedicineRepository(s, quietLogger()))

	require.NoError(t, svc.SeedOnStartup(ctx))

	doctors, found, err := backend.Get(ctx, repoImpl.KeyDoctors)
	require.NoError(t, err)
	assert.True(t, found)
	_, found, err = backend.Get(ctx, repoImpl.KeyMedicines)
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, svc.SeedOnStartup(ctx))
	again, _, err := backend.Get(ctx, repoImpl.KeyDoctors)
	require.NoError(t, err)
	assert.Equal(t, doctors, again)
}

func TestCatalogSeedService_ToleratesUnpersistedCatalog(t *testing.T) {
	s := store.New(storage.NewMemoryBackend(), "", quietLogger())
	medicines := new(MockMedicineRepository)
	medicines.On("Migrate", mock.Anything).Return(apperror.NewPersistenceError("write", repoImpl.KeyMedicines, errors.New("quota exceeded")))

	svc := NewCatalogSeedService(quietLogger(), repoImpl.NewDoctorRepository(s, quietLogger()), medicines)
	assert.NoError(t, svc.SeedOnStartup(context.Background()))
	medicines.AssertExpectations(t)
}

func TestCatalogSeedService_ReturnsReadFailure(t *testing.T) {
	s := store.New(storage.NewMemoryBackend(), "", quietLogger())
	medicines := new(MockMedicineRepository)
	medicines.On("Migrate", mock.Anything).Return(apperror.NewPersistenceError("read", repoImpl.KeyMedicines, errors.New("connection refused")))

	svc := NewCatalogSeedService(quietLogger(), repoImpl.NewDoctorRepository(s, quietLogger()), medicines)
	err := svc.SeedOnStartup(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsPersistence(err))
}

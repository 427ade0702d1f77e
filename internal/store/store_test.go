package store

import (
	"context"
	"errors"
	"io"
	"testing"

	"medifind/internal/infrastructure/storage"
	"medifind/pkg/apperror"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	var value []byte
	if v := args.Get(0); v != nil {
		value = v.([]byte)
	}
	return value, args.Bool(1), args.Error(2)
}

func (m *MockBackend) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockBackend) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type record struct {
	Name string `json:"name"`
	Age  string `json:"age"`
}

func TestStore_ReadMissingKey(t *testing.T) {
	s := New(storage.NewMemoryBackend(), "", quietLogger())

	var got record
	found, err := s.Read(context.Background(), "medifind_user", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	s := New(backend, "medifind:", quietLogger())

	require.NoError(t, s.Write(ctx, "medifind_user", record{Name: "Asha", Age: "34"}))

	raw, found, _ := backend.Get(ctx, "medifind:medifind_user")
	require.True(t, found)
	assert.JSONEq(t, `{"name":"Asha","age":"34"}`, string(raw))

	var got record
	found, err := s.Read(ctx, "medifind_user", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{Name: "Asha", Age: "34"}, got)
}

func TestStore_CorruptedValueIsClearedAndAbsent(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, "medifind_user", []byte("{not json")))
	s := New(backend, "", quietLogger())

	var got record
	found, err := s.Read(ctx, "medifind_user", &got)
	require.NoError(t, err)
	assert.False(t, found)

	_, stillThere, _ := backend.Get(ctx, "medifind_user")
	assert.False(t, stillThere)
}

func TestStore_FailedWriteIsVisibleInProcess(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("Set", ctx, "appointments", mock.Anything).Return(errors.New("quota exceeded")).Once()
	s := New(backend, "", quietLogger())

	err := s.Write(ctx, "appointments", []record{{Name: "Asha"}})
	require.Error(t, err)
	assert.True(t, apperror.IsPersistence(err))

	var got []record
	found, err := s.Read(ctx, "appointments", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []record{{Name: "Asha"}}, got)

	// A later successful write drops the in-memory copy.
	backend.On("Set", ctx, "appointments", mock.Anything).Return(nil).Once()
	require.NoError(t, s.Write(ctx, "appointments", []record{}))

	// Reads go back to the backend once the overlay entry is gone.
	backend.On("Get", ctx, "appointments").Return([]byte(`[]`), true, nil).Once()
	found, err = s.Read(ctx, "appointments", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
	backend.AssertExpectations(t)
}

func TestStore_FailedRemoveLeavesTombstone(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("Del", ctx, "medifind_user").Return(errors.New("read-only"))
	s := New(backend, "", quietLogger())

	err := s.Remove(ctx, "medifind_user")
	assert.True(t, apperror.IsPersistence(err))

	var got record
	found, err := s.Read(ctx, "medifind_user", &got)
	require.NoError(t, err)
	assert.False(t, found)
	backend.AssertNotCalled(t, "Get", ctx, "medifind_user")
}

func TestStore_BackendReadFailure(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("Get", ctx, "doctorsData_k").Return(nil, false, errors.New("connection refused"))
	s := New(backend, "", quietLogger())

	var got []record
	found, err := s.Read(ctx, "doctorsData_k", &got)
	assert.False(t, found)

	var perr *apperror.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "read", perr.Op)
	assert.Equal(t, "doctorsData_k", perr.Key)
}

// Package store is the persistent store adapter: JSON values over a
// key-value backend, with corrupted values treated as absent and failed
// writes kept in process memory so reads stay consistent for the session.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"medifind/pkg/apperror"

	"github.com/sirupsen/logrus"
)

// Backend is the raw key-value persistence substrate.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// overlayEntry holds a change the backend refused. A nil value is a tombstone.
type overlayEntry struct {
	value []byte
}

type Store struct {
	backend Backend
	prefix  string
	log     *logrus.Logger

	mu      sync.RWMutex
	overlay map[string]overlayEntry
}

func New(backend Backend, prefix string, log *logrus.Logger) *Store {
	return &Store{
		backend: backend,
		prefix:  prefix,
		log:     log,
		overlay: make(map[string]overlayEntry),
	}
}

// Read decodes the value stored under key into dest. A missing key and a
// corrupted value both report found=false without error; the corrupted key
// is cleared so the failure does not repeat.
func (s *Store) Read(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, found, err := s.readRaw(ctx, key)
	if err != nil {
		s.log.Warnf("Failed to read key %s: %+v", key, err)
		return false, apperror.NewPersistenceError("read", key, err)
	}
	if !found {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warnf("Discarding corrupted value under key %s: %+v", key, err)
		if rmErr := s.Remove(ctx, key); rmErr != nil {
			s.log.Warnf("Failed to clear corrupted key %s: %+v", key, rmErr)
		}
		return false, nil
	}
	return true, nil
}

// Write encodes value and stores it under key. When the backend fails the
// value is still served to later reads from this process and a
// *apperror.PersistenceError is returned.
func (s *Store) Write(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperror.NewPersistenceError("encode", key, err)
	}

	if err := s.backend.Set(ctx, s.prefix+key, raw); err != nil {
		s.mu.Lock()
		s.overlay[key] = overlayEntry{value: raw}
		s.mu.Unlock()
		s.log.Warnf("Change to key %s kept in memory only: %+v", key, err)
		return apperror.NewPersistenceError("write", key, err)
	}

	s.clearOverlay(key)
	return nil
}

// Remove deletes key. A backend failure leaves a tombstone so later reads
// from this process see the key as absent.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.backend.Del(ctx, s.prefix+key); err != nil {
		s.mu.Lock()
		s.overlay[key] = overlayEntry{}
		s.mu.Unlock()
		s.log.Warnf("Removal of key %s kept in memory only: %+v", key, err)
		return apperror.NewPersistenceError("remove", key, err)
	}

	s.clearOverlay(key)
	return nil
}

func (s *Store) readRaw(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	entry, pending := s.overlay[key]
	s.mu.RUnlock()
	if pending {
		return entry.value, entry.value != nil, nil
	}
	return s.backend.Get(ctx, s.prefix+key)
}

func (s *Store) clearOverlay(key string) {
	s.mu.Lock()
	delete(s.overlay, key)
	s.mu.Unlock()
}

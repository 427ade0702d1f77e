// Package apperror classifies failures of core operations so the delivery
// layer can decide how to surface them.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports malformed or missing input, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// NotFoundError reports a referenced entity id that does not resolve.
type NotFoundError struct {
	Entity string
	ID     string
	Err    error
}

func NewNotFoundError(entity, id string, sentinel error) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id, Err: sentinel}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed read, write or remove against the
// storage backend.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func NewPersistenceError(op, key string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Key: key, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}

// IsNotPersisted reports a write or remove the backend refused. The change
// is still visible to this process, so callers treat it as a degraded
// success rather than a failure.
func IsNotPersisted(err error) bool {
	var target *PersistenceError
	if !errors.As(err, &target) {
		return false
	}
	return target.Op == "write" || target.Op == "remove"
}

package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	sentinel := errors.New("doctor not found")

	tests := []struct {
		name        string
		err         error
		validation  bool
		notFound    bool
		persistence bool
	}{
		{"validation", NewValidationError(map[string]string{"rating": "rating is required"}), true, false, false},
		{"not found", NewNotFoundError("doctor", "doc_x", sentinel), false, true, false},
		{"wrapped persistence", fmt.Errorf("save: %w", NewPersistenceError("write", "appointments", errors.New("quota"))), false, false, true},
		{"plain", errors.New("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidation(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.persistence, IsPersistence(tt.err))
		})
	}
}

func TestNotFoundError_UnwrapsSentinel(t *testing.T) {
	sentinel := errors.New("medicine not found")
	err := NewNotFoundError("medicine", "med_x", sentinel)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, `medicine "med_x" not found`, err.Error())
}

func TestValidationError_MessageListsFieldsSorted(t *testing.T) {
	err := NewValidationError(map[string]string{"comment": "x", "ReviewerName": "y"})
	assert.Equal(t, "validation failed: ReviewerName, comment", err.Error())
}

func TestIsNotPersisted(t *testing.T) {
	cause := errors.New("quota exceeded")

	assert.True(t, IsNotPersisted(NewPersistenceError("write", "appointments", cause)))
	assert.True(t, IsNotPersisted(fmt.Errorf("wrapped: %w", NewPersistenceError("remove", "medifind_user", cause))))
	assert.False(t, IsNotPersisted(NewPersistenceError("read", "appointments", cause)))
	assert.False(t, IsNotPersisted(cause))
}

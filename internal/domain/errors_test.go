package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "with ID",
			err:      NewNotFoundError("quote", "42"),
			expected: `quote with id "42" not found`,
		},
		{
			name:     "without ID",
			err:      NewNotFoundError("quote", ""),
			expected: "quote not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrNotFound))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("category", "must be lowercase")

	assert.Equal(t, "validation failed for category: must be lowercase", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "category", valErr.Field)
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		expected  bool
	}{
		{"IsNotFound matches", NewNotFoundError("quote", "1"), IsNotFound, true},
		{"IsNotFound wrapped", fmt.Errorf("looking up: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound rejects other", ErrValidation, IsNotFound, false},
		{"IsValidation matches", NewValidationError("id", "positive"), IsValidation, true},
		{"IsValidation rejects nil", nil, IsValidation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.predicate(tt.err))
		})
	}
}

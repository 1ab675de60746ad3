package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "field and message",
			err:      &ValidationError{Field: "email", Message: "email format is not valid"},
			expected: "email: email format is not valid",
		},
		{
			name:     "no field",
			err:      &ValidationError{Message: "form is empty"},
			expected: "form is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("create article: %w", &ValidationError{Field: "title", Message: "title is required"})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "title", validationErr.Field)
}

func TestValidationError_WrapsCause(t *testing.T) {
	cause := errors.New("category is not valid")
	err := fmt.Errorf("create article: %w", &ValidationError{Field: "category", Message: cause.Error(), Err: cause})

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "create article: category: category is not valid", err.Error())
}

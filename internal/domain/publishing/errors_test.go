package publishing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "length validation error",
			field:    "title",
			message:  "must be between 5 and 50 characters",
			expected: "validation error on field 'title': must be between 5 and 50 characters",
		},
		{
			name:     "required field error",
			field:    "name",
			message:  "must be a non-empty string",
			expected: "validation error on field 'name': must be a non-empty string",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{
				Field:   tt.field,
				Message: tt.message,
			}

			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_UnwrapsToInvalidArgument(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "must be a non-empty string"}

	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Wrapping at a higher layer keeps both matches intact.
	wrapped := fmt.Errorf("create author: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidArgument)

	var verr *ValidationError
	require.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "name", verr.Field)
}

func TestEveryValidationFailureMatchesInvalidArgument(t *testing.T) {
	reg := NewRegistry()
	author, err := reg.NewAuthor("Ada")
	require.NoError(t, err)
	magazine, err := reg.NewMagazine("Tech Weekly", "Tech")
	require.NoError(t, err)

	failures := []error{}

	_, err = reg.NewAuthor("")
	failures = append(failures, err)
	_, err = reg.NewMagazine("X", "Tech")
	failures = append(failures, err)
	_, err = reg.NewMagazine("Tech Weekly", "")
	failures = append(failures, err)
	_, err = reg.NewArticle(author, magazine, "Oops")
	failures = append(failures, err)
	failures = append(failures, magazine.SetName("X"))
	failures = append(failures, magazine.SetCategory(""))

	for _, err := range failures {
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

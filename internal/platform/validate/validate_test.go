// Copyright (c) 2026 Book Alchemy. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Jane Austen", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Range checks inclusive bounds.
*/
func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		isValid bool
	}{
		{"lower_bound", 0, true},
		{"inside", 1815, true},
		{"upper_bound", 9999, true},
		{"below", -1, false},
		{"above", 10000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Range("publication_year", tt.value, 0, 9999)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").                            // Fails
		MaxLen("title", "a very long title", 5).          // Fails
		Positive("author_id", 0).                         // Fails
		Custom("birthdate", true, validate.MsgDate).      // Fails
		Custom("date_of_death", false, validate.MsgDate). // Passes
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 4)

	assert.True(t, v.HasFieldError("birthdate"))
	assert.False(t, v.HasFieldError("date_of_death"))
}

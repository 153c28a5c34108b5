// Copyright (c) 2026 Book Alchemy. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
)

/*
TestConstructors_StatusAndCode checks that every constructor pins its HTTP status.
*/
func TestConstructors_StatusAndCode(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("Book"), http.StatusNotFound, apperr.CodeNotFound},
		{"conflict", apperr.Conflict("dup"), http.StatusConflict, apperr.CodeConflict},
		{"validation", apperr.ValidationError("bad"), http.StatusBadRequest, apperr.CodeValidation},
		{"rate_limited", apperr.RateLimited(1), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"external", apperr.ExternalService("Open Library", errors.New("boom")), http.StatusBadGateway, apperr.CodeExternalService},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

/*
TestAs_WrappedChain verifies extraction through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	wrapped := fmt.Errorf("add book: %w", apperr.ExternalService("Open Library", cause))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "Open Library is unavailable", ae.Error())
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeExternalService))

	assert.Nil(t, apperr.As(cause))
	assert.False(t, apperr.HasCode(cause, apperr.CodeNotFound))
}

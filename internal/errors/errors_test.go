package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate identity", ErrDuplicateIdentity, http.StatusConflict, "DUPLICATE_IDENTITY"},
		{"identity not found", ErrIdentityNotFound, http.StatusNotFound, "IDENTITY_NOT_FOUND"},
		{"bad credential", ErrBadCredential, http.StatusForbidden, "BAD_CREDENTIAL"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"validation", ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"contact not found", ErrContactNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("update contact: %w", ErrContactNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetails(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dial tcp 10.0.0.5:3306: connection refused"))

	assert.Equal(t, "internal server error", httpErr.Message)
	assert.NotContains(t, httpErr.ToErrorResponse().Message, "10.0.0.5")
}

func TestMapErrorToHTTP_ValidationKeepsDetail(t *testing.T) {
	err := fmt.Errorf("%w: name is required", ErrValidation)

	httpErr := MapErrorToHTTP(err)

	assert.Equal(t, "invalid request: name is required", httpErr.Message)
	assert.Equal(t, ErrorResponse{Message: httpErr.Message, Code: "VALIDATION_ERROR"}, httpErr.ToErrorResponse())
}

package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateIdentity is returned when a username is already registered.
	ErrDuplicateIdentity = errors.New("identity already exists")
	// ErrIdentityNotFound is returned when logging in with an unknown username.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrBadCredential is returned when the password does not match.
	ErrBadCredential = errors.New("bad credential")
	// ErrUnauthenticated is returned when a protected route is called without a token.
	ErrUnauthenticated = errors.New("no token provided")
	// ErrForbidden is returned when the presented token does not verify.
	ErrForbidden = errors.New("invalid token")
	// ErrValidation is returned when a request body is malformed or incomplete.
	ErrValidation = errors.New("invalid request")
	// ErrContactNotFound is returned when a contact is absent or owned by someone else.
	ErrContactNotFound = errors.New("contact not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are
// matched with errors.Is; anything unknown becomes a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateIdentity):
		return NewHTTPError(http.StatusConflict, "User Already Exists, please find another username", "DUPLICATE_IDENTITY")
	case errors.Is(err, ErrIdentityNotFound):
		return NewHTTPError(http.StatusNotFound, "User does not exist", "IDENTITY_NOT_FOUND")
	case errors.Is(err, ErrBadCredential):
		return NewHTTPError(http.StatusForbidden, "Incorrect username or password", "BAD_CREDENTIAL")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, "No token provided", "UNAUTHENTICATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, "Invalid token", "FORBIDDEN")
	case errors.Is(err, ErrValidation):
		// Validation messages carry the offending field, so keep the full text.
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrContactNotFound):
		return NewHTTPError(http.StatusNotFound, "Contact not found", "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

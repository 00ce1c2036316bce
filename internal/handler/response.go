package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "contactbook/internal/errors"
)

// MessageResponse is the body of successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate decodes the request body into req and runs struct
// validation. Failures are returned as ready-to-send 400 errors.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return respondError(fmt.Errorf("%w: malformed request body", apperrors.ErrValidation))
	}
	if err := c.Validate(req); err != nil {
		return respondError(fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}
	return nil
}

// respondError converts err into an echo HTTP error. For unexpected errors
// the cause is kept as the internal error, which the request logger records;
// the client only sees a generic message.
func respondError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	he := echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	if httpErr.StatusCode == http.StatusInternalServerError {
		return he.SetInternal(err)
	}
	return he
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "records-service/pkg/errors"
)

// CustomHTTPErrorHandler handles all errors returned by handlers and middleware.
// It maps sentinel errors to appropriate HTTP status codes, sanitizes internal
// errors, and logs errors with request context.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
			message = "resource not found"
		case errors.Is(err, apperrors.ErrUnauthorized):
			code = http.StatusUnauthorized
			message = "authentication required"
		case errors.Is(err, apperrors.ErrForbidden):
			code = http.StatusForbidden
			message = "access denied"
		case errors.Is(err, apperrors.ErrConflict):
			code = http.StatusConflict
			message = "resource conflict"
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrBadRequest):
			code = http.StatusBadRequest
			message = "invalid input"
		default:
			// Never expose internal error details to clients.
			c.Logger().Errorf("unhandled error: %v", err)
		}
	}

	if err := c.JSON(code, map[string]string{"error": message}); err != nil {
		c.Logger().Errorf("failed to write error response: %v", err)
	}
}

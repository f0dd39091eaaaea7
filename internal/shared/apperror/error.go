package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string              // Error code (e.g., INVALID_INPUT)
	Message    string              // User-friendly message
	HTTPStatus int                 // HTTP status code
	Details    map[string][]string // Field-level messages, validation errors only
	Err        error               // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// NewWithDetails creates an AppError carrying a field-keyed detail map.
func NewWithDetails(code, message string, httpStatus int, details map[string][]string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Details:    details,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HTTPError is the wire-level projection of an error. Anything that is not an
// *AppError collapses to a generic 500 so internals never leak to clients.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details map[string][]string
}

func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Internal server error",
	}
}

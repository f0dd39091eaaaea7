package hourlogerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrHourLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Hour log not found",
		http.StatusNotFound,
	)

	ErrInvalidHourLogID = apperror.New(
		apperror.CodeInvalidInput,
		"Hour log id must be a valid UUID",
		http.StatusBadRequest,
	)

	ErrEmptyHourLogUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one field must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidLogDate = apperror.New(
		apperror.CodeInvalidInput,
		"Log date must be a valid date-time",
		http.StatusBadRequest,
	)

	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Hour log has already been approved or rejected",
		http.StatusConflict,
	)
)

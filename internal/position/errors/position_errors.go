package positionerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)

	ErrPositionNameTaken = apperror.New(
		apperror.CodeConflict,
		"A position with this name already exists",
		http.StatusConflict,
	)

	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"Position id must be a valid UUID",
		http.StatusBadRequest,
	)

	ErrEmptyPositionUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one field must be provided",
		http.StatusBadRequest,
	)

	ErrPositionInUse = apperror.New(
		apperror.CodeConflict,
		"Position is still referenced by employees",
		http.StatusConflict,
	)
)

package projecterrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)

	ErrProjectNameTaken = apperror.New(
		apperror.CodeConflict,
		"A project with this name already exists",
		http.StatusConflict,
	)

	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Project id must be a valid UUID",
		http.StatusBadRequest,
	)

	ErrEmptyProjectUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one field must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"Start date must be a valid date-time",
		http.StatusBadRequest,
	)

	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"Expected end date must be a valid date-time",
		http.StatusBadRequest,
	)

	ErrProjectInUse = apperror.New(
		apperror.CodeConflict,
		"Project is still referenced by tasks or attachments",
		http.StatusConflict,
	)
)

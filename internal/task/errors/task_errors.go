package taskerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)

	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"Task id must be a valid UUID",
		http.StatusBadRequest,
	)

	ErrEmptyTaskUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one field must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"Due date must be a valid date-time",
		http.StatusBadRequest,
	)

	ErrAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"Employee is already assigned to this task",
		http.StatusConflict,
	)

	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignment not found",
		http.StatusNotFound,
	)
)

package departmenterrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	ErrDepartmentNameTaken = apperror.New(
		apperror.CodeConflict,
		"A department with this name already exists",
		http.StatusConflict,
	)

	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Department id must be a valid UUID",
		http.StatusBadRequest,
	)

	ErrEmptyDepartmentUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one field must be provided",
		http.StatusBadRequest,
	)

	ErrDepartmentInUse = apperror.New(
		apperror.CodeConflict,
		"Department is still referenced by employees",
		http.StatusConflict,
	)
)

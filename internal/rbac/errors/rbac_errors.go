package rbacerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)

	ErrRoleNameTaken = apperror.New(
		apperror.CodeConflict,
		"A role with this name already exists",
		http.StatusConflict,
	)

	ErrPermissionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Permission not found",
		http.StatusNotFound,
	)

	ErrPermissionNameTaken = apperror.New(
		apperror.CodeConflict,
		"A permission with this name already exists",
		http.StatusConflict,
	)

	ErrRoleAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"Employee already holds this role",
		http.StatusConflict,
	)

	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"Role id must be a valid UUID",
		http.StatusBadRequest,
	)

	ErrInvalidPermissionName = apperror.New(
		apperror.CodeInvalidInput,
		"Permission name must look like resource:action",
		http.StatusBadRequest,
	)
)

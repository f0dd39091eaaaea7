package attachmenterrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrAttachmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attachment not found",
		http.StatusNotFound,
	)

	ErrInvalidAttachmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Attachment id must be a valid UUID",
		http.StatusBadRequest,
	)

	ErrStoragePathTaken = apperror.New(
		apperror.CodeConflict,
		"An attachment already exists at this storage path",
		http.StatusConflict,
	)

	ErrNoParent = apperror.New(
		apperror.CodeInvalidInput,
		"Attachment must reference a task, project, or employee profile",
		http.StatusBadRequest,
	)
)

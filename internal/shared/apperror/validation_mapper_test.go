package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-workforce/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()

	t.Run("collects every failing field", func(t *testing.T) {
		err := v.Struct(loginPayload{Email: "not-an-email", Password: "x"})
		require.Error(t, err)

		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		require.ErrorAs(t, mapped, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Len(t, appErr.Details, 2)
	})

	t.Run("non-validator error becomes a bare 400", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("unexpected EOF"))

		var appErr *apperror.AppError
		require.ErrorAs(t, mapped, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Nil(t, appErr.Details)
	})
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and message", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.New(apperror.CodeConflict, "Name already taken", http.StatusConflict))

		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "Name already taken", httpErr.Message)
	})

	t.Run("wrapped app error unwraps", func(t *testing.T) {
		inner := apperror.New(apperror.CodeNotFound, "Project not found", http.StatusNotFound)
		httpErr := apperror.ToHTTP(apperror.Wrap(inner, apperror.CodeNotFound, "Project not found", http.StatusNotFound))

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("everything else collapses to a generic 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection reset"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal server error", httpErr.Message)
		assert.NotContains(t, httpErr.Message, "pq:")
	})
}

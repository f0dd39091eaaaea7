package attachment

import (
	"net/http"

	attachmenterrors "go-workforce/internal/attachment/errors"
	"go-workforce/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attachment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attachment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.FindByParent(
		c.Request.Context(),
		c.Query("task_id"),
		c.Query("project_id"),
		c.Query("employee_profile_id"),
	)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		c.Error(attachmenterrors.ErrInvalidAttachmentID)
		return
	}

	resp, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		c.Error(attachmenterrors.ErrInvalidAttachmentID)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

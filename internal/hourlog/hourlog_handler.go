package hourlog

import (
	"net/http"
	"strconv"

	hourlogerrors "go-workforce/internal/hourlog/errors"
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
	l := zap.L().Named("hourlog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hourlog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHourLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	page := 1
	limit := 10
	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.Error(apperror.New(apperror.CodeInvalidInput, "Invalid page parameter", http.StatusBadRequest))
			return
		}
		page = v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.Error(apperror.New(apperror.CodeInvalidInput, "Invalid limit parameter", http.StatusBadRequest))
			return
		}
		limit = v
	}

	resp, err := h.service.FindAll(
		c.Request.Context(),
		page, limit,
		c.Query("employee_id"),
		c.Query("task_id"),
		c.Query("status"),
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
		c.Error(hourlogerrors.ErrInvalidHourLogID)
		return
	}

	resp, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		c.Error(hourlogerrors.ErrInvalidHourLogID)
		return
	}

	var req UpdateHourLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Decide(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		c.Error(hourlogerrors.ErrInvalidHourLogID)
		return
	}

	var req DecideHourLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), id, c.GetString("employee_id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if uuid.Validate(id) != nil {
		c.Error(hourlogerrors.ErrInvalidHourLogID)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

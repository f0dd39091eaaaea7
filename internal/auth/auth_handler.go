package auth

import (
	"net/http"

	autherrors "go-workforce/internal/auth/errors"
	"go-workforce/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	setTokenCookies(c, resp)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.MapValidationError(err))
		return
	}

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		if cookie, err := c.Cookie("refresh_token"); err == nil {
			refreshToken = cookie
		}
	}
	if refreshToken == "" {
		c.Error(autherrors.ErrMissingToken)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		c.Error(err)
		return
	}

	setTokenCookies(c, resp)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Me(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		c.Error(autherrors.ErrMissingToken)
		return
	}

	resp, err := h.service.GetMe(c.Request.Context(), employeeID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func setTokenCookies(c *gin.Context, resp TokenResponse) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", resp.AccessToken, int(accessTokenTTL.Seconds()), "/", "", false, true)
	c.SetCookie("refresh_token", resp.RefreshToken, int(refreshTokenTTL.Seconds()), "/", "", false, true)
}

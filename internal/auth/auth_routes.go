package auth

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	group := r.Group("/auth")
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/login", middleware.RateLimitByClient(1, 3), handler.Login)
		group.POST("/refresh", middleware.RateLimitByClient(1, 3), handler.Refresh)
		group.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}

package hourlog

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	logs := r.Group("/hour-logs")
	logs.Use(middleware.AuthMiddleware())
	logs.Use(middleware.ContextLogger(logger))
	{
		logs.GET("",
			middleware.RateLimitByClient(3, 10),
			middleware.RBACAuthorize(rbacService, "hour_log", "read"),
			handler.GetAll,
		)
		logs.GET("/:id",
			middleware.RateLimitByClient(3, 10),
			middleware.RBACAuthorize(rbacService, "hour_log", "read"),
			handler.GetByID,
		)
		logs.POST("",
			middleware.RateLimitByClient(1, 3),
			middleware.RBACAuthorize(rbacService, "hour_log", "create"),
			handler.Create,
		)
		logs.PUT("/:id",
			middleware.RateLimitByClient(1, 3),
			middleware.RBACAuthorize(rbacService, "hour_log", "update"),
			handler.Update,
		)
		logs.PATCH("/:id/decision",
			middleware.RateLimitByClient(1, 3),
			middleware.RBACAuthorize(rbacService, "hour_log", "approve"),
			handler.Decide,
		)
		logs.DELETE("/:id",
			middleware.RateLimitByClient(0.5, 2),
			middleware.RBACAuthorize(rbacService, "hour_log", "delete"),
			handler.Delete,
		)
	}
}

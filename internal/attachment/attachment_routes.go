package attachment

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
	attachments := r.Group("/attachments")
	attachments.Use(middleware.AuthMiddleware())
	attachments.Use(middleware.ContextLogger(logger))
	{
		attachments.GET("",
			middleware.RateLimitByClient(3, 10),
			middleware.RBACAuthorize(rbacService, "attachment", "read"),
			handler.GetAll,
		)
		attachments.GET("/:id",
			middleware.RateLimitByClient(3, 10),
			middleware.RBACAuthorize(rbacService, "attachment", "read"),
			handler.GetByID,
		)
		attachments.POST("",
			middleware.RateLimitByClient(1, 3),
			middleware.RBACAuthorize(rbacService, "attachment", "create"),
			handler.Create,
		)
		attachments.DELETE("/:id",
			middleware.RateLimitByClient(0.5, 2),
			middleware.RBACAuthorize(rbacService, "attachment", "delete"),
			handler.Delete,
		)
	}
}

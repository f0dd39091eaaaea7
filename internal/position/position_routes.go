package position

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
	positions := r.Group("/positions")
	positions.Use(middleware.AuthMiddleware())
	positions.Use(middleware.ContextLogger(logger))
	{
		positions.GET("",
			middleware.RateLimitByClient(5, 20),
			middleware.RBACAuthorize(rbacService, "position", "read"),
			handler.GetAll,
		)
		positions.GET("/:id",
			middleware.RateLimitByClient(5, 20),
			middleware.RBACAuthorize(rbacService, "position", "read"),
			handler.GetByID,
		)
		positions.POST("",
			middleware.RateLimitByClient(0.5, 2),
			middleware.RBACAuthorize(rbacService, "position", "create"),
			handler.Create,
		)
		positions.PUT("/:id",
			middleware.RateLimitByClient(0.5, 2),
			middleware.RBACAuthorize(rbacService, "position", "update"),
			handler.Update,
		)
		positions.DELETE("/:id",
			middleware.RateLimitByClient(0.1, 1),
			middleware.RBACAuthorize(rbacService, "position", "delete"),
			handler.Delete,
		)
	}
}

package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("",
			middleware.RateLimitByClient(5, 20),
			middleware.RBACAuthorize(rbacService, "department", "read"),
			handler.GetAll,
		)
		departments.GET("/:id",
			middleware.RateLimitByClient(5, 20),
			middleware.RBACAuthorize(rbacService, "department", "read"),
			handler.GetByID,
		)
		departments.POST("",
			middleware.RateLimitByClient(0.5, 2),
			middleware.RBACAuthorize(rbacService, "department", "create"),
			handler.Create,
		)
		departments.PUT("/:id",
			middleware.RateLimitByClient(0.5, 2),
			middleware.RBACAuthorize(rbacService, "department", "update"),
			handler.Update,
		)
		departments.DELETE("/:id",
			middleware.RateLimitByClient(0.1, 1),
			middleware.RBACAuthorize(rbacService, "department", "delete"),
			handler.Delete,
		)
	}
}

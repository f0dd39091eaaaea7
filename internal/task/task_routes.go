package task

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
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.Use(middleware.ContextLogger(logger))
	{
		tasks.GET("",
			middleware.RateLimitByClient(3, 10),
			middleware.RBACAuthorize(rbacService, "task", "read"),
			handler.GetAll,
		)
		tasks.GET("/:id",
			middleware.RateLimitByClient(3, 10),
			middleware.RBACAuthorize(rbacService, "task", "read"),
			handler.GetByID,
		)
		tasks.POST("",
			middleware.RateLimitByClient(1, 3),
			middleware.RBACAuthorize(rbacService, "task", "create"),
			handler.Create,
		)
		tasks.PUT("/:id",
			middleware.RateLimitByClient(1, 3),
			middleware.RBACAuthorize(rbacService, "task", "update"),
			handler.Update,
		)
		tasks.DELETE("/:id",
			middleware.RateLimitByClient(0.1, 1),
			middleware.RBACAuthorize(rbacService, "task", "delete"),
			handler.Delete,
		)

		tasks.POST("/:id/assignees",
			middleware.RateLimitByClient(1, 3),
			middleware.RBACAuthorize(rbacService, "task", "assign"),
			handler.Assign,
		)
		tasks.DELETE("/:id/assignees/:employeeId",
			middleware.RateLimitByClient(1, 3),
			middleware.RBACAuthorize(rbacService, "task", "assign"),
			handler.Unassign,
		)
	}
}

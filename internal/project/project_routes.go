package project

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
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	projects.Use(middleware.ContextLogger(logger))
	{
		projects.GET("",
			middleware.RateLimitByClient(3, 10),
			middleware.RBACAuthorize(rbacService, "project", "read"),
			handler.GetAll,
		)
		projects.GET("/:id",
			middleware.RateLimitByClient(3, 10),
			middleware.RBACAuthorize(rbacService, "project", "read"),
			handler.GetByID,
		)
		projects.POST("",
			middleware.RateLimitByClient(0.5, 2),
			middleware.RBACAuthorize(rbacService, "project", "create"),
			handler.Create,
		)
		projects.PUT("/:id",
			middleware.RateLimitByClient(0.5, 2),
			middleware.RBACAuthorize(rbacService, "project", "update"),
			handler.Update,
		)
		projects.DELETE("/:id",
			middleware.RateLimitByClient(0.1, 1),
			middleware.RBACAuthorize(rbacService, "project", "delete"),
			handler.Delete,
		)
	}
}

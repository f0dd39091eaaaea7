package rbac

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	service Service,
	logger *zap.Logger,
) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	group.Use(middleware.RateLimitByClient(2, 5))
	{
		group.GET("/roles", middleware.RBACAuthorize(service, "role", "read"), handler.ListRoles)
		group.POST("/roles", middleware.RBACAuthorize(service, "role", "create"), handler.CreateRole)
		group.PUT("/roles/:id", middleware.RBACAuthorize(service, "role", "update"), handler.UpdateRole)
		group.DELETE("/roles/:id", middleware.RBACAuthorize(service, "role", "delete"), handler.DeleteRole)

		group.GET("/roles/:id/permissions", middleware.RBACAuthorize(service, "role", "read"), handler.GetRolePermissions)
		group.PUT("/roles/:id/permissions", middleware.RBACAuthorize(service, "role", "update"), handler.SetRolePermissions)

		group.GET("/permissions", middleware.RBACAuthorize(service, "permission", "read"), handler.ListPermissions)
		group.POST("/permissions", middleware.RBACAuthorize(service, "permission", "create"), handler.CreatePermission)
		group.DELETE("/permissions/:id", middleware.RBACAuthorize(service, "permission", "delete"), handler.DeletePermission)

		group.POST("/assignments", middleware.RBACAuthorize(service, "role", "assign"), handler.AssignRole)
		group.DELETE("/assignments", middleware.RBACAuthorize(service, "role", "assign"), handler.RevokeRole)

		group.POST("/enforce", middleware.RBACAuthorize(service, "role", "read"), handler.Enforce)
	}
}

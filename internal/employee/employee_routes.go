package employee

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", middleware.RateLimitByClient(3, 10), handler.GetAll)
		employees.GET("/options", middleware.RateLimitByClient(5, 20), handler.GetOptions)
		employees.GET("/:id", middleware.RateLimitByClient(3, 10), handler.GetByID)
		employees.POST("", middleware.RateLimitByClient(0.5, 2), middleware.Idempotency(rdb), handler.Create)
		employees.PATCH("/:id", middleware.RateLimitByClient(0.5, 2), handler.Update)
		employees.PUT("/:id", middleware.RateLimitByClient(0.5, 2), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByClient(0.1, 1), handler.Delete)
	}
}

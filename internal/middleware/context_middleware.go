package middleware

import (
	"go-workforce/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger stamps each request with an id and a scoped logger, then
// propagates both through the standard context so services and repos never
// see gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)
		c.Set("request_id", rid)

		fields := []zap.Field{zap.String("request_id", rid)}
		if eid := c.GetString("employee_id"); eid != "" {
			fields = append(fields, zap.String("employee_id", eid))
		}
		reqLogger := logger.With(fields...)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		if eid := c.GetString("employee_id"); eid != "" {
			ctx = contextutil.WithEmployeeID(ctx, eid)
		}
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

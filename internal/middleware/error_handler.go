package middleware

import (
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler writes the response for any error a handler attached via
// c.Error. Handlers stay thin: they translate nothing, they just return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		httpErr := apperror.ToHTTP(err)

		logger := contextutil.GetLogger(c.Request.Context())
		if httpErr.Status >= 500 {
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Int("status", httpErr.Status),
				zap.Error(err),
			)
		} else {
			logger.Warn("request rejected",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Int("status", httpErr.Status),
				zap.String("code", httpErr.Code),
			)
		}

		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
	}
}

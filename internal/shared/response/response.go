package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error shape: {message, errors?}.
type ErrorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func Error(c *gin.Context, status int, message string, details map[string][]string) {
	c.JSON(status, ErrorBody{
		Message: message,
		Errors:  details,
	})
}

// TotalPages is the ceiling of total/limit.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

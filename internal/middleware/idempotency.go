package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency rejects a duplicate POST carrying the same Idempotency-Key
// while the first one is still in flight. The lock expires on its own, a
// crashed request never wedges the key.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		caller := c.GetString("employee_id")
		if caller == "" {
			caller = c.ClientIP()
		}
		lockKey := fmt.Sprintf("idemp:%s:%s:%s:lock", c.FullPath(), caller, idempKey)

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis being unreachable must not take the write path down.
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "A request with this idempotency key is already in progress", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_lock_key", lockKey)
		c.Next()
	}
}

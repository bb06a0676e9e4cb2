package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// RateLimit throttles requests per client IP. Limiter errors let the request
// through.
func RateLimit(limiter Limiter, message string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retry, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Error("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			seconds := int(math.Ceil(retry.Seconds()))
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "message": message})
			return
		}
		c.Next()
	}
}

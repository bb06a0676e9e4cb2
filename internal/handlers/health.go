package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health reports 503 while the database does not answer a ping.
func (h *Handler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /health"

		if h.ping != nil {
			ctx, cancel := h.requestContext(c)
			defer cancel()

			if err := h.ping(ctx); err != nil {
				h.log.Error("database ping failed", zap.String("route", route), zap.Error(err))
				h.respondWithStatus(c, http.StatusServiceUnavailable, route, "database unavailable")
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	}
}

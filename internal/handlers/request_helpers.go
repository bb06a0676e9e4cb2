package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"foodreview/internal/service"
)

const msgInvalidBody = "Invalid request body."

func (h *Handler) handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		h.log.Error("panic recovered",
			zap.String("route", route),
			zap.Any("panic", r),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error"})
	}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// respondWithError writes the failure envelope for err. Service errors carry
// their own status and client message; anything else is a 500.
func (h *Handler) respondWithError(c *gin.Context, route string, err error) {
	status, message := http.StatusInternalServerError, "Server Error"

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		status, message = svcErr.Kind.HTTPStatus(), svcErr.Message
	}

	fields := []zap.Field{
		zap.String("route", route),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", fields...)
	} else {
		h.log.Info("request rejected", fields...)
	}

	body := gin.H{"success": false, "message": message}
	if h.exposeErrors {
		body["error"] = err.Error()
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

func (h *Handler) respondWithStatus(c *gin.Context, status int, route, message string) {
	h.log.Info("request rejected",
		zap.String("route", route),
		zap.Int("status", status),
		zap.String("message", message),
	)
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OptionalAuth sets the userId when a valid token is sent and otherwise lets
// the request through anonymously.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := authenticate(c, verifier); err == nil {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// AuthGuard is UserAuth when required is set and OptionalAuth otherwise.
func AuthGuard(verifier TokenVerifier, log *zap.Logger, required bool) gin.HandlerFunc {
	if required {
		return UserAuth(verifier, log)
	}
	return OptionalAuth(verifier)
}

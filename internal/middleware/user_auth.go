package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"foodreview/internal/auth"
)

// UserIDKey is the gin context key holding the authenticated user's ObjectID.
const UserIDKey = "userId"

const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid or expired token."
)

type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// UserAuth validates user JWT tokens and injects the userId into the context.
// A missing token is answered with 403, a bad or expired one with 401.
func UserAuth(verifier TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authenticate(c, verifier)
		if err != nil {
			status, message := http.StatusUnauthorized, msgInvalidToken
			if errors.Is(err, auth.ErrMissingToken) {
				status, message = http.StatusForbidden, msgNoToken
			}
			log.Warn("auth rejected",
				zap.String("path", c.FullPath()),
				zap.Int("status", status),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func authenticate(c *gin.Context, verifier TokenVerifier) (primitive.ObjectID, error) {
	raw := bearerToken(c.GetHeader("Authorization"))
	claims, err := verifier.Verify(raw)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return claims.UserID()
}

// bearerToken returns the token of a "Bearer <token>" header, or "" when the
// header is absent or uses another scheme.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// UserID returns the id set by UserAuth or OptionalAuth, if any.
func UserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

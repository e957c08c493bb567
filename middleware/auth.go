package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/666-PLAYER-666/hotel-banya/config"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

const phoneContextKey = "phone"

// JWTAuthMiddleware validates the Bearer session token and stores the
// caller's phone number in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": utils.ErrNoToken.Error()})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		phone, err := utils.ExtractPhoneFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": utils.ErrInvalidToken.Error()})
			return
		}

		c.Set(phoneContextKey, phone)
		c.Next()
	}
}

// SessionPhone returns the authenticated phone number set by
// JWTAuthMiddleware.
func SessionPhone(c *gin.Context) string {
	return c.GetString(phoneContextKey)
}

// IsAdmin reports whether the authenticated caller is the single privileged
// administrator identity.
func IsAdmin(c *gin.Context) bool {
	return SessionPhone(c) == config.AppConfig.AdminPhone
}

// AdminOnly rejects callers other than the administrator. It must run after
// JWTAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": utils.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"veritek/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the admin endpoints with the static bearer
// token from configuration. With no token configured, admin access is
// disabled entirely.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.AppConfig.AdminToken
		if expected == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access is not configured"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if tokenString != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}

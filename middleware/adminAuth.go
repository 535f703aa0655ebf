package middleware

import (
	"net/http"

	"statutesync/models"

	"github.com/gin-gonic/gin"
)

// RequireRole must run after SessionAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := CurrentProfile(c)
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
			return
		}
		if profile.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

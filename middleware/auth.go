package middleware

import (
	"errors"
	"net/http"
	"strings"

	"statutesync/models"
	"statutesync/services/user"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileKey is the gin context key holding the signed-in *models.UserProfile.
const ProfileKey = "profile"

// SessionAuthMiddleware admits requests whose bearer token matches the stored session token.
func SessionAuthMiddleware(sessions user.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		profile, err := sessions.ValidateToken(c.Request.Context(), tokenString)
		if errors.Is(err, user.ErrUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		if err != nil {
			utils.GetLogger().Error("Session lookup failed", zap.Error(err))
			utils.AbortWithError(c, "Failed to load session", err)
			return
		}

		c.Set(ProfileKey, profile)
		c.Next()
	}
}

// CurrentProfile returns the profile stored by SessionAuthMiddleware.
func CurrentProfile(c *gin.Context) *models.UserProfile {
	v, ok := c.Get(ProfileKey)
	if !ok {
		return nil
	}
	profile, _ := v.(*models.UserProfile)
	return profile
}

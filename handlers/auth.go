package handlers

import (
	"net/http"

	"statutesync/middleware"
	"statutesync/models"
	"statutesync/services/user"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Sessions user.SessionService
}

func NewUserHandler(sessions user.SessionService) *UserHandler {
	return &UserHandler{Sessions: sessions}
}

// LoginHandler handles POST /api/auth/login. Any email signs in; the password is not checked.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}

	resp, err := h.Sessions.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Login failed", err)
		return
	}
	logger.Info("User signed in", zap.String("email", resp.User.Email), zap.String("role", string(resp.User.Role)))
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context()); err != nil {
		respondError(c, "Logout failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// AuthStatusHandler handles GET /api/auth/status.
func (h *UserHandler) AuthStatusHandler(c *gin.Context) {
	status, err := h.Sessions.Status(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to read session", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetProfileHandler handles GET /api/profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentProfile(c))
}

// UpdateProfileHandler handles PUT /api/profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile update", err.Error())
		return
	}

	profile, err := h.Sessions.UpdateProfile(c.Request.Context(), update)
	if err != nil {
		respondError(c, "Failed to update profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

package handlers

import (
	"net/http"

	"statutesync/models"
	"statutesync/services/admin"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Admin admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Admin: svc}
}

func (h *AdminHandler) AdminStatsHandler(c *gin.Context) {
	stats, err := h.Admin.Stats(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to compute stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HistoryHandler handles GET /api/history for any signed-in user.
func (h *AdminHandler) HistoryHandler(c *gin.Context) {
	history, err := h.Admin.History(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load history", err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// ResetFamilyHandler handles POST /api/admin/reset/:family.
func (h *AdminHandler) ResetFamilyHandler(c *gin.Context) {
	family := models.Family(c.Param("family"))
	if err := h.Admin.ResetFamily(c.Request.Context(), family); err != nil {
		respondError(c, "Reset failed", err)
		return
	}
	utils.GetLogger().Warn("Record family reset to defaults", zap.String("family", string(family)))
	c.JSON(http.StatusOK, gin.H{"message": "Reset complete", "family": family})
}

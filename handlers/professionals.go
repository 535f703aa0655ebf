package handlers

import (
	"net/http"

	"statutesync/models"
	"statutesync/services/marketplace"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MarketplaceHandler struct {
	Marketplace marketplace.MarketplaceService
}

func NewMarketplaceHandler(svc marketplace.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{Marketplace: svc}
}

func (h *MarketplaceHandler) ListProfessionalsHandler(c *gin.Context) {
	pros, err := h.Marketplace.ListProfessionals(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, "Failed to load professionals", err)
		return
	}
	c.JSON(http.StatusOK, pros)
}

func (h *MarketplaceHandler) GetProfessionalHandler(c *gin.Context) {
	pro, err := h.Marketplace.GetProfessional(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Professional not available", err)
		return
	}
	c.JSON(http.StatusOK, pro)
}

func (h *MarketplaceHandler) AddProfessionalHandler(c *gin.Context) {
	var req models.NewProfessional
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid professional", err.Error())
		return
	}

	pro, err := h.Marketplace.AddProfessional(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to onboard professional", err)
		return
	}
	utils.GetLogger().Info("Professional onboarded", zap.String("id", pro.ID), zap.String("name", pro.Name))
	c.JSON(http.StatusCreated, pro)
}

func (h *MarketplaceHandler) RemoveProfessionalHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Marketplace.RemoveProfessional(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to revoke professional", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Professional removed", "id": id})
}

// BookProfessionalHandler handles POST /api/professionals/:id/book.
func (h *MarketplaceHandler) BookProfessionalHandler(c *gin.Context) {
	booking, err := h.Marketplace.BookProfessional(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Booking failed", err)
		return
	}
	utils.GetLogger().Info("Booking created", zap.String("id", booking.ID), zap.String("proId", booking.ProID))
	c.JSON(http.StatusCreated, booking)
}

func (h *MarketplaceHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Marketplace.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

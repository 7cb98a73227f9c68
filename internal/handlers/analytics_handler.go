package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grandstay/hotel-backend/internal/database"
)

// AnalyticsHandler serves the cross-table analysis endpoints
type AnalyticsHandler struct {
	analyticsRepo *database.AnalyticsRepository
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsRepo *database.AnalyticsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsRepo: analyticsRepo}
}

// GuestsWithReservations lists all guests and their reservations, including
// guests without any
func (h *AnalyticsHandler) GuestsWithReservations(c *gin.Context) {
	rows, err := h.analyticsRepo.GuestsWithReservations()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ReservationsWithGuests lists all reservations with guest info
func (h *AnalyticsHandler) ReservationsWithGuests(c *gin.Context) {
	rows, err := h.analyticsRepo.ReservationsWithGuests()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// StaffServices lists staff matched against service requests in both
// directions
func (h *AnalyticsHandler) StaffServices(c *gin.Context) {
	rows, err := h.analyticsRepo.StaffServiceRequests()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GuestLoyaltyAnalysis returns per-guest totals and loyalty tier
func (h *AnalyticsHandler) GuestLoyaltyAnalysis(c *gin.Context) {
	rows, err := h.analyticsRepo.GuestLoyaltyAnalysis()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// RevenueByRoomType returns monthly revenue per room type with price premium
func (h *AnalyticsHandler) RevenueByRoomType(c *gin.Context) {
	rows, err := h.analyticsRepo.RevenueByRoomType()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

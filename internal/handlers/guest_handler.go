package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grandstay/hotel-backend/internal/database"
	"github.com/grandstay/hotel-backend/internal/models"
)

// GuestHandler handles guest management endpoints
type GuestHandler struct {
	guestRepo *database.GuestRepository
}

// NewGuestHandler creates a new GuestHandler
func NewGuestHandler(guestRepo *database.GuestRepository) *GuestHandler {
	return &GuestHandler{guestRepo: guestRepo}
}

// ListGuests returns all guests with their reservation summary
func (h *GuestHandler) ListGuests(c *gin.Context) {
	guests, err := h.guestRepo.List()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// CreateGuest adds a new guest
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req models.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.guestRepo.Create(&req)
	if err != nil {
		handleRepoError(c, err, "Guest not found")
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// GetGuest returns a single guest by ID
func (h *GuestHandler) GetGuest(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest ID"})
		return
	}

	guest, err := h.guestRepo.GetByID(guestID)
	if err != nil {
		handleRepoError(c, err, "Guest not found")
		return
	}
	c.JSON(http.StatusOK, guest)
}

// UpdateGuest updates guest information
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest ID"})
		return
	}

	var req models.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.guestRepo.Update(guestID, &req)
	if err != nil {
		handleRepoError(c, err, "Guest not found")
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DeleteGuest deletes a guest. Guests with reservation rows in any status
// cannot be deleted.
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest ID"})
		return
	}

	guest, err := h.guestRepo.Delete(guestID)
	if err != nil {
		handleRepoError(c, err, "Guest not found")
		return
	}

	c.JSON(http.StatusOK, models.DeletedGuestResponse{
		Message: "Guest deleted successfully",
		Guest:   guest,
	})
}

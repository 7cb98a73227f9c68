package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grandstay/hotel-backend/internal/database"
	"github.com/grandstay/hotel-backend/internal/models"
)

// RoomHandler handles room and hotel endpoints
type RoomHandler struct {
	roomRepo *database.RoomRepository
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(roomRepo *database.RoomRepository) *RoomHandler {
	return &RoomHandler{roomRepo: roomRepo}
}

// ListRooms returns the full rooms board
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomRepo.List()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ListHotels returns all hotels for dropdown selection
func (h *RoomHandler) ListHotels(c *gin.Context) {
	hotels, err := h.roomRepo.ListHotels()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// AvailableRooms returns rooms free for a date range, optionally filtered by
// hotel. Both dates are required.
func (h *RoomHandler) AvailableRooms(c *gin.Context) {
	checkInStr := c.Query("check_in")
	checkOutStr := c.Query("check_out")

	if checkInStr == "" || checkOutStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-in and check-out dates are required"})
		return
	}

	checkIn, err := time.Parse(models.DateLayout, checkInStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be formatted as YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse(models.DateLayout, checkOutStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be formatted as YYYY-MM-DD"})
		return
	}

	var hotelID *int
	if hotelIDStr := c.Query("hotel_id"); hotelIDStr != "" {
		id, err := strconv.Atoi(hotelIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel ID"})
			return
		}
		hotelID = &id
	}

	rooms, err := h.roomRepo.Available(checkIn, checkOut, hotelID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// RoomsByHotel returns one hotel's rooms for the reservation form, filtered
// by availability when both dates are given
func (h *RoomHandler) RoomsByHotel(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("hotel_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel ID"})
		return
	}

	var checkIn, checkOut *time.Time
	checkInStr := c.Query("check_in")
	checkOutStr := c.Query("check_out")
	if checkInStr != "" && checkOutStr != "" {
		in, err := time.Parse(models.DateLayout, checkInStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be formatted as YYYY-MM-DD"})
			return
		}
		out, err := time.Parse(models.DateLayout, checkOutStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be formatted as YYYY-MM-DD"})
			return
		}
		checkIn, checkOut = &in, &out
	}

	rooms, err := h.roomRepo.ByHotel(hotelID, checkIn, checkOut)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// UpdateRoomStatus sets the advisory room status
func (h *RoomHandler) UpdateRoomStatus(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var req models.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomRepo.UpdateStatus(roomID, req.Status)
	if err != nil {
		handleRepoError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, room)
}

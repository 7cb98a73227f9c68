package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grandstay/hotel-backend/internal/database"
	"github.com/grandstay/hotel-backend/internal/metrics"
	"github.com/grandstay/hotel-backend/internal/models"
)

// ReservationHandler handles reservation endpoints. Creation and status
// updates delegate the consistency protocol to the repository transaction.
type ReservationHandler struct {
	reservationRepo *database.ReservationRepository
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(reservationRepo *database.ReservationRepository) *ReservationHandler {
	return &ReservationHandler{reservationRepo: reservationRepo}
}

// ListReservations returns all reservations with guest and room details
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservationRepo.List()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation returns a single reservation by ID
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	reservation, err := h.reservationRepo.GetByID(reservationID)
	if err != nil {
		handleRepoError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CreateReservation books a room. All field validation happens before any
// database interaction; the availability re-check runs inside the insert
// transaction so overlapping concurrent attempts cannot both succeed.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.reservationRepo.Create(&req)
	if err != nil {
		if errors.Is(err, database.ErrRoomUnavailable) {
			metrics.IncReservationConflict()
		}
		handleRepoError(c, err, "Reservation not found")
		return
	}

	metrics.IncReservationCreated()
	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservationStatus transitions a reservation (check-in, check-out,
// cancel). The status value must be one of the five known statuses.
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	var req models.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.reservationRepo.UpdateStatus(reservationID, req.Status)
	if err != nil {
		handleRepoError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

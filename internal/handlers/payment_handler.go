package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grandstay/hotel-backend/internal/database"
	"github.com/grandstay/hotel-backend/internal/models"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentRepo *database.PaymentRepository
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentRepo *database.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{paymentRepo: paymentRepo}
}

// ListPayments returns all payments with reservation and guest details
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentRepo.List()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreatePayment records a payment against an existing reservation
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentRepo.Create(&req)
	if err != nil {
		handleRepoError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// UpdatePaymentStatus sets the payment status
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	var req models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentRepo.UpdateStatus(paymentID, req.PaymentStatus)
	if err != nil {
		handleRepoError(c, err, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// PaymentsByReservation returns all payments for one reservation
func (h *PaymentHandler) PaymentsByReservation(c *gin.Context) {
	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	payments, err := h.paymentRepo.ByReservation(reservationID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

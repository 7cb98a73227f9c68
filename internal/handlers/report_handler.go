package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grandstay/hotel-backend/internal/database"
	"github.com/grandstay/hotel-backend/internal/models"
	"github.com/grandstay/hotel-backend/internal/reports"
)

// ReportHandler handles the reporting endpoints
type ReportHandler struct {
	reportRepo      *database.ReportRepository
	reservationRepo *database.ReservationRepository
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportRepo *database.ReportRepository, reservationRepo *database.ReservationRepository) *ReportHandler {
	return &ReportHandler{reportRepo: reportRepo, reservationRepo: reservationRepo}
}

// Revenue returns total revenue over a date range
func (h *ReportHandler) Revenue(c *gin.Context) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start date and end date are required"})
		return
	}

	start, err := time.Parse(models.DateLayout, startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be formatted as YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(models.DateLayout, endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be formatted as YYYY-MM-DD"})
		return
	}

	total, err := h.reportRepo.Revenue(start, end)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.RevenueReport{TotalRevenue: total})
}

// DailyRevenue returns per-hotel revenue for the trailing 30 days
func (h *ReportHandler) DailyRevenue(c *gin.Context) {
	rows, err := h.reportRepo.DailyRevenue()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Occupancy returns the occupancy rate for a hotel on a date
func (h *ReportHandler) Occupancy(c *gin.Context) {
	hotelIDStr := c.Query("hotel_id")
	dateStr := c.Query("date")

	if hotelIDStr == "" || dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hotel ID and date are required"})
		return
	}

	hotelID, err := strconv.Atoi(hotelIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel ID"})
		return
	}
	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	rate, err := h.reportRepo.OccupancyRate(hotelID, date)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OccupancyReport{OccupancyRate: rate})
}

// GuestStats returns summary statistics over all guests
func (h *ReportHandler) GuestStats(c *gin.Context) {
	stats, err := h.reportRepo.GuestStats()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RoomUtilization returns per-room-type status counts
func (h *ReportHandler) RoomUtilization(c *gin.Context) {
	rows, err := h.reportRepo.RoomUtilization()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Export streams the joined reservations ledger as an xlsx workbook
func (h *ReportHandler) Export(c *gin.Context) {
	list, err := h.reservationRepo.List()
	if err != nil {
		internalError(c, err)
		return
	}

	fileName := fmt.Sprintf("reservations_%s.xlsx", time.Now().Format(models.DateLayout))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	if err := reports.WriteReservationsWorkbook(c.Writer, list); err != nil {
		internalError(c, err)
		return
	}
}

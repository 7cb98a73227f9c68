package database

import (
	"fmt"
	"time"

	"github.com/grandstay/hotel-backend/internal/models"
)

// ReportRepository computes read-only aggregates over the schema. These are
// snapshot queries with no consistency concerns.
type ReportRepository struct {
	db DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Revenue sums the total_amount of non-cancelled reservations whose stay
// overlaps [startDate, endDate).
func (r *ReportRepository) Revenue(startDate, endDate time.Time) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM reservations
		WHERE status IN ('Confirmed', 'Checked-in', 'Checked-out')
		AND NOT (check_out_date <= $1 OR check_in_date >= $2)`

	if err := r.db.Get(&total, query, startDate, endDate); err != nil {
		return 0, fmt.Errorf("failed to calculate revenue: %w", err)
	}
	return total, nil
}

// DailyRevenue returns per-hotel booking revenue for the trailing 30 days
func (r *ReportRepository) DailyRevenue() ([]models.DailyRevenue, error) {
	rows := []models.DailyRevenue{}
	query := `
		SELECT
			DATE(res.check_in_date) AS revenue_date,
			h.hotel_name,
			COUNT(res.reservation_id) AS total_bookings,
			SUM(res.total_amount) AS daily_revenue,
			AVG(res.total_amount) AS avg_booking_value
		FROM reservations res
		JOIN rooms rm ON res.room_id = rm.room_id
		JOIN hotels h ON rm.hotel_id = h.hotel_id
		WHERE res.status IN ('Confirmed', 'Checked-in', 'Checked-out')
		AND res.check_in_date >= CURRENT_DATE - INTERVAL '30 days'
		GROUP BY DATE(res.check_in_date), h.hotel_name
		ORDER BY revenue_date DESC
		LIMIT 30`

	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get daily revenue: %w", err)
	}
	return rows, nil
}

// OccupancyRate returns the percentage of a hotel's rooms occupied on a
// date: rooms with a Confirmed or Checked-in reservation covering the date
// under half-open range semantics.
func (r *ReportRepository) OccupancyRate(hotelID int, date time.Time) (float64, error) {
	var rate float64
	query := `
		SELECT COALESCE(ROUND(
			COUNT(DISTINCT res.room_id)::DECIMAL / NULLIF(COUNT(DISTINCT rm.room_id), 0) * 100, 2
		), 0)
		FROM rooms rm
		LEFT JOIN reservations res ON res.room_id = rm.room_id
			AND res.status IN ('Confirmed', 'Checked-in')
			AND res.check_in_date <= $2 AND res.check_out_date > $2
		WHERE rm.hotel_id = $1`

	if err := r.db.Get(&rate, query, hotelID, date); err != nil {
		return 0, fmt.Errorf("failed to calculate occupancy rate: %w", err)
	}
	return rate, nil
}

// GuestStats returns summary statistics over all guests
func (r *ReportRepository) GuestStats() (*models.GuestStats, error) {
	stats := &models.GuestStats{}
	query := `
		SELECT
			COUNT(*) AS total_guests,
			COUNT(CASE WHEN loyalty_points > 0 THEN 1 END) AS loyalty_members,
			AVG(loyalty_points) AS avg_loyalty_points,
			MAX(loyalty_points) AS max_loyalty_points
		FROM guests`

	if err := r.db.Get(stats, query); err != nil {
		return nil, fmt.Errorf("failed to get guest statistics: %w", err)
	}
	return stats, nil
}

// RoomUtilization returns per-room-type status counts and occupancy
// percentage based on the advisory room status field.
func (r *ReportRepository) RoomUtilization() ([]models.RoomUtilization, error) {
	rows := []models.RoomUtilization{}
	query := `
		SELECT
			rt.type_name,
			COUNT(rm.room_id) AS total_rooms,
			COUNT(CASE WHEN rm.status = 'Available' THEN 1 END) AS available_rooms,
			COUNT(CASE WHEN rm.status = 'Occupied' THEN 1 END) AS occupied_rooms,
			COUNT(CASE WHEN rm.status = 'Maintenance' THEN 1 END) AS maintenance_rooms,
			ROUND(
				(COUNT(CASE WHEN rm.status = 'Occupied' THEN 1 END)::DECIMAL / COUNT(rm.room_id)) * 100, 2
			) AS occupancy_percentage
		FROM rooms rm
		JOIN room_types rt ON rm.room_type_id = rt.room_type_id
		GROUP BY rt.type_name
		ORDER BY rt.type_name`

	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get room utilization: %w", err)
	}
	return rows, nil
}

package database

import (
	"fmt"

	"github.com/grandstay/hotel-backend/internal/models"
)

// AnalyticsRepository serves the cross-table analysis queries: outer joins
// over guests/reservations and staff/service requests, loyalty tiers, and
// revenue by room type.
type AnalyticsRepository struct {
	db DB
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// GuestsWithReservations lists every guest with their reservations,
// including guests that have none.
func (r *AnalyticsRepository) GuestsWithReservations() ([]models.GuestReservationRow, error) {
	rows := []models.GuestReservationRow{}
	query := `
		SELECT
			g.guest_id,
			g.first_name,
			g.last_name,
			g.email,
			res.reservation_id,
			res.check_in_date,
			res.check_out_date,
			res.total_amount,
			res.status AS reservation_status
		FROM guests g
		LEFT OUTER JOIN reservations res ON g.guest_id = res.guest_id
		ORDER BY g.last_name, g.first_name, res.check_in_date DESC`

	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get guests with reservations: %w", err)
	}
	return rows, nil
}

// ReservationsWithGuests lists every reservation with guest and room info,
// including orphaned reservations if any exist.
func (r *AnalyticsRepository) ReservationsWithGuests() ([]models.ReservationGuestRow, error) {
	rows := []models.ReservationGuestRow{}
	query := `
		SELECT
			g.first_name,
			g.last_name,
			g.email,
			res.reservation_id,
			res.check_in_date,
			res.check_out_date,
			res.total_amount,
			res.status,
			rm.room_number,
			h.hotel_name
		FROM guests g
		RIGHT OUTER JOIN reservations res ON g.guest_id = res.guest_id
		LEFT JOIN rooms rm ON res.room_id = rm.room_id
		LEFT JOIN hotels h ON rm.hotel_id = h.hotel_id
		ORDER BY res.check_in_date DESC`

	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get reservations with guests: %w", err)
	}
	return rows, nil
}

// StaffServiceRequests matches staff against service requests in both
// directions: staff without requests and requests without assigned staff.
func (r *AnalyticsRepository) StaffServiceRequests() ([]models.StaffServiceRow, error) {
	rows := []models.StaffServiceRow{}
	query := `
		SELECT
			s.staff_id,
			s.first_name,
			s.last_name,
			s.department,
			s.position,
			sr.request_id,
			sr.status AS request_status,
			sv.service_name,
			sr.request_date,
			sr.completion_date
		FROM staff s
		FULL OUTER JOIN service_requests sr ON s.staff_id = sr.staff_id
		LEFT JOIN services sv ON sr.service_id = sv.service_id
		ORDER BY s.last_name, s.first_name, sr.request_date DESC`

	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get staff service requests: %w", err)
	}
	return rows, nil
}

// GuestLoyaltyAnalysis computes per-guest reservation and payment totals and
// assigns a tier by non-cancelled reservation count: fewer than 2 Bronze,
// 2-4 Silver, 5-9 Gold, 10 or more VIP.
func (r *AnalyticsRepository) GuestLoyaltyAnalysis() ([]models.GuestLoyaltyRow, error) {
	rows := []models.GuestLoyaltyRow{}
	query := `
		SELECT
			g.guest_id,
			g.first_name || ' ' || g.last_name AS guest_name,
			g.email,
			g.loyalty_points,
			COUNT(res.reservation_id) AS total_reservations,
			COALESCE(SUM(res.total_amount), 0) AS total_spent,
			COUNT(p.payment_id) AS total_payments,
			COALESCE(SUM(p.amount), 0) AS total_paid,
			AVG(res.total_amount) AS avg_reservation_value,
			MAX(res.check_out_date) AS last_visit,
			CASE
				WHEN COUNT(res.reservation_id) >= 10 THEN 'VIP'
				WHEN COUNT(res.reservation_id) >= 5 THEN 'Gold'
				WHEN COUNT(res.reservation_id) >= 2 THEN 'Silver'
				ELSE 'Bronze'
			END AS guest_tier
		FROM guests g
		LEFT OUTER JOIN reservations res ON g.guest_id = res.guest_id AND res.status != 'Cancelled'
		LEFT OUTER JOIN payments p ON res.reservation_id = p.reservation_id AND p.payment_status = 'Completed'
		GROUP BY g.guest_id, g.first_name, g.last_name, g.email, g.loyalty_points
		ORDER BY total_spent DESC, total_reservations DESC`

	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get guest loyalty analysis: %w", err)
	}
	return rows, nil
}

// RevenueByRoomType returns monthly revenue per room type for the trailing
// 12 months, with the average booking price premium over the type's base
// price.
func (r *AnalyticsRepository) RevenueByRoomType() ([]models.RoomTypeRevenueRow, error) {
	rows := []models.RoomTypeRevenueRow{}
	query := `
		SELECT
			rt.type_name,
			DATE_TRUNC('month', res.check_in_date) AS month,
			COUNT(res.reservation_id) AS bookings,
			SUM(res.total_amount) AS total_revenue,
			AVG(res.total_amount) AS avg_revenue_per_booking,
			rt.base_price,
			ROUND(
				(SUM(res.total_amount) / COUNT(res.reservation_id) / rt.base_price - 1) * 100, 2
			) AS price_premium_percentage
		FROM reservations res
		JOIN rooms rm ON res.room_id = rm.room_id
		JOIN room_types rt ON rm.room_type_id = rt.room_type_id
		WHERE res.status IN ('Confirmed', 'Checked-in', 'Checked-out')
		AND res.check_in_date >= CURRENT_DATE - INTERVAL '12 months'
		GROUP BY rt.type_name, DATE_TRUNC('month', res.check_in_date), rt.base_price
		ORDER BY month DESC, total_revenue DESC`

	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to get revenue by room type: %w", err)
	}
	return rows, nil
}

package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandstay/hotel-backend/internal/models"
)

func TestGuestsWithReservations(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`FROM guests g LEFT OUTER JOIN reservations res`).
		WillReturnRows(sqlmock.NewRows([]string{
			"guest_id", "first_name", "last_name", "email",
			"reservation_id", "check_in_date", "check_out_date", "total_amount", "reservation_status",
		}).
			AddRow(1, "Alice", "Carter", "alice@example.com",
				101, date("2025-03-01"), date("2025-03-05"), 450.00, "Confirmed").
			AddRow(2, "Ben", "Okafor", "ben@example.com",
				nil, nil, nil, nil, nil))

	rows, err := repo.GuestsWithReservations()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].ReservationID)
	assert.Equal(t, 101, *rows[0].ReservationID)

	// Guests without reservations keep their row with null reservation
	// columns.
	assert.Nil(t, rows[1].ReservationID)
	assert.Nil(t, rows[1].ReservationStatus)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationsWithGuests(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`FROM guests g RIGHT OUTER JOIN reservations res`).
		WillReturnRows(sqlmock.NewRows([]string{
			"first_name", "last_name", "email",
			"reservation_id", "check_in_date", "check_out_date", "total_amount", "status",
			"room_number", "hotel_name",
		}).AddRow("Alice", "Carter", "alice@example.com",
			101, date("2025-03-01"), date("2025-03-05"), 450.00, "Confirmed",
			"204", "GrandStay Downtown"))

	rows, err := repo.ReservationsWithGuests()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.ReservationConfirmed, rows[0].Status)
	require.NotNil(t, rows[0].RoomNumber)
	assert.Equal(t, "204", *rows[0].RoomNumber)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffServiceRequests(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	requestDate := time.Now()
	mock.ExpectQuery(`FROM staff s FULL OUTER JOIN service_requests sr`).
		WillReturnRows(sqlmock.NewRows([]string{
			"staff_id", "first_name", "last_name", "department", "position",
			"request_id", "request_status", "service_name", "request_date", "completion_date",
		}).
			AddRow(5, "Maria", "Lopez", "Housekeeping", "Supervisor",
				301, "In Progress", "Room Cleaning", requestDate, nil).
			AddRow(6, "Devon", "Price", "Maintenance", "Technician",
				nil, nil, nil, nil, nil).
			AddRow(nil, nil, nil, nil, nil,
				302, "Pending", "Laundry", requestDate, nil))

	rows, err := repo.StaffServiceRequests()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Staff without requests and unassigned requests both survive the full
	// outer join.
	assert.Nil(t, rows[1].RequestID)
	assert.Nil(t, rows[2].StaffID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuestLoyaltyAnalysis(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	lastVisit := date("2025-02-20")
	mock.ExpectQuery(`END AS guest_tier FROM guests g`).
		WillReturnRows(sqlmock.NewRows([]string{
			"guest_id", "guest_name", "email", "loyalty_points",
			"total_reservations", "total_spent", "total_payments", "total_paid",
			"avg_reservation_value", "last_visit", "guest_tier",
		}).
			AddRow(1, "Alice Carter", "alice@example.com", 540,
				11, 5200.00, 11, 5200.00, 472.73, lastVisit, "VIP").
			AddRow(2, "Ben Okafor", "ben@example.com", 60,
				3, 900.00, 2, 600.00, 300.00, lastVisit, "Silver").
			AddRow(3, "Chen Wei", "chen@example.com", 0,
				0, 0.00, 0, 0.00, nil, nil, "Bronze"))

	rows, err := repo.GuestLoyaltyAnalysis()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.TierVIP, rows[0].GuestTier)
	assert.Equal(t, models.TierSilver, rows[1].GuestTier)
	assert.Equal(t, models.TierBronze, rows[2].GuestTier)
	assert.Nil(t, rows[2].AvgReservationValue)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueByRoomType(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`DATE_TRUNC\('month', res.check_in_date\) AS month`).
		WillReturnRows(sqlmock.NewRows([]string{
			"type_name", "month", "bookings", "total_revenue",
			"avg_revenue_per_booking", "base_price", "price_premium_percentage",
		}).AddRow("Deluxe", date("2025-03-01"), 14, 2450.00, 175.00, 150.00, 16.67))

	rows, err := repo.RevenueByRoomType()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 16.67, rows[0].PricePremiumPercent)

	assert.NoError(t, mock.ExpectationsWereMet())
}

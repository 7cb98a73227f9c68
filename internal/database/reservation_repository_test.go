package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandstay/hotel-backend/internal/models"
)

func date(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"reservation_id", "guest_id", "room_id", "check_in_date", "check_out_date",
		"adults", "children", "total_amount", "status", "special_requests", "created_at",
	})
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func newCreateRequest(t *testing.T, checkIn, checkOut string) *models.CreateReservationRequest {
	t.Helper()
	req := &models.CreateReservationRequest{
		GuestID:      1,
		RoomID:       42,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Adults:       2,
		Children:     1,
		TotalAmount:  450.00,
	}
	require.NoError(t, req.Validate())
	return req
}

func TestIsRoomAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	t.Run("No Blocking Reservations", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE room_id`).
			WithArgs(42, date("2025-03-01"), date("2025-03-05")).
			WillReturnRows(countRows(0))

		available, err := repo.IsRoomAvailable(42, date("2025-03-01"), date("2025-03-05"), nil)
		require.NoError(t, err)
		assert.True(t, available)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Overlapping Reservation Blocks", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE room_id`).
			WithArgs(42, date("2025-03-03"), date("2025-03-07")).
			WillReturnRows(countRows(1))

		available, err := repo.IsRoomAvailable(42, date("2025-03-03"), date("2025-03-07"), nil)
		require.NoError(t, err)
		assert.False(t, available)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Exclude Reservation ID", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE room_id .+ AND reservation_id !=`).
			WithArgs(42, date("2025-03-01"), date("2025-03-05"), 7).
			WillReturnRows(countRows(0))

		excludeID := 7
		available, err := repo.IsRoomAvailable(42, date("2025-03-01"), date("2025-03-05"), &excludeID)
		require.NoError(t, err)
		assert.True(t, available)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE room_id`).
			WithArgs(42, date("2025-03-01"), date("2025-03-05")).
			WillReturnError(fmt.Errorf("database error"))

		_, err := repo.IsRoomAvailable(42, date("2025-03-01"), date("2025-03-05"), nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check room availability")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateReservation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	t.Run("Success", func(t *testing.T) {
		req := newCreateRequest(t, "2025-03-01", "2025-03-05")
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE room_id`).
			WithArgs(42, date("2025-03-01"), date("2025-03-05")).
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`INSERT INTO reservations`).
			WithArgs(1, 42, date("2025-03-01"), date("2025-03-05"), 2, 1, 450.00, nil).
			WillReturnRows(reservationRows().AddRow(
				101, 1, 42, date("2025-03-01"), date("2025-03-05"),
				2, 1, 450.00, "Confirmed", nil, now,
			))
		mock.ExpectCommit()

		reservation, err := repo.Create(req)
		require.NoError(t, err)
		assert.Equal(t, 101, reservation.ReservationID)
		assert.Equal(t, models.ReservationConfirmed, reservation.Status)
		assert.Equal(t, 42, reservation.RoomID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflict Writes Nothing", func(t *testing.T) {
		req := newCreateRequest(t, "2025-03-03", "2025-03-07")

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE room_id`).
			WithArgs(42, date("2025-03-03"), date("2025-03-07")).
			WillReturnRows(countRows(1))
		mock.ExpectRollback()

		reservation, err := repo.Create(req)
		assert.Nil(t, reservation)
		assert.ErrorIs(t, err, ErrRoomUnavailable)

		// No INSERT was expected: the failed availability check aborts the
		// transaction before any row is written.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Back To Back Booking Succeeds", func(t *testing.T) {
		// [2025-03-05, 2025-03-08) after an existing stay ending 2025-03-05:
		// half-open ranges do not overlap, so the count comes back zero.
		req := newCreateRequest(t, "2025-03-05", "2025-03-08")
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE room_id`).
			WithArgs(42, date("2025-03-05"), date("2025-03-08")).
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`INSERT INTO reservations`).
			WillReturnRows(reservationRows().AddRow(
				102, 1, 42, date("2025-03-05"), date("2025-03-08"),
				2, 1, 450.00, "Confirmed", nil, now,
			))
		mock.ExpectCommit()

		reservation, err := repo.Create(req)
		require.NoError(t, err)
		assert.Equal(t, 102, reservation.ReservationID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Availability Check Error Rolls Back", func(t *testing.T) {
		req := newCreateRequest(t, "2025-03-01", "2025-03-05")

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE room_id`).
			WillReturnError(fmt.Errorf("database error"))
		mock.ExpectRollback()

		_, err := repo.Create(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check room availability")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin Error", func(t *testing.T) {
		req := newCreateRequest(t, "2025-03-01", "2025-03-05")

		mock.ExpectBegin().WillReturnError(fmt.Errorf("connection refused"))

		_, err := repo.Create(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin transaction")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReservationRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .+ FROM reservations WHERE reservation_id`).
			WithArgs(101).
			WillReturnRows(reservationRows().AddRow(
				101, 1, 42, date("2025-03-01"), date("2025-03-05"),
				2, 1, 450.00, "Confirmed", nil, now,
			))
		mock.ExpectQuery(`UPDATE reservations SET status`).
			WithArgs("Checked-in", 101).
			WillReturnRows(reservationRows().AddRow(
				101, 1, 42, date("2025-03-01"), date("2025-03-05"),
				2, 1, 450.00, "Checked-in", nil, now,
			))
		mock.ExpectCommit()

		reservation, err := repo.UpdateStatus(101, models.ReservationCheckedIn)
		require.NoError(t, err)
		assert.Equal(t, models.ReservationCheckedIn, reservation.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .+ FROM reservations WHERE reservation_id`).
			WithArgs(999).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		reservation, err := repo.UpdateStatus(999, models.ReservationCancelled)
		assert.Nil(t, reservation)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

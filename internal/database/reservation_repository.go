package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/grandstay/hotel-backend/internal/models"
)

// ReservationRepository handles database operations for the reservations
// table, including the booking consistency protocol: the availability
// re-check and the insert run inside one transaction so two overlapping
// create attempts for the same room can never both succeed.
type ReservationRepository struct {
	db DB
}

// NewReservationRepository creates a new ReservationRepository
func NewReservationRepository(db DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// getter is satisfied by both DB and *sqlx.Tx so the availability predicate
// can run inside the booking transaction.
type getter interface {
	Get(dest interface{}, query string, args ...interface{}) error
}

// Two ranges overlap unless one ends on or before the other starts.
// Half-open [check_in, check_out) semantics: back-to-back bookings where one
// reservation checks out the day another checks in do not conflict. Only
// Confirmed and Checked-in reservations block.
const blockingCountQuery = `
	SELECT COUNT(*)
	FROM reservations
	WHERE room_id = $1
	  AND status IN ('Confirmed', 'Checked-in')
	  AND NOT (check_out_date <= $2 OR check_in_date >= $3)`

func countBlockingReservations(q getter, roomID int, checkIn, checkOut time.Time, excludeReservationID *int) (int, error) {
	var count int
	if excludeReservationID != nil {
		err := q.Get(&count, blockingCountQuery+` AND reservation_id != $4`,
			roomID, checkIn, checkOut, *excludeReservationID)
		return count, err
	}
	err := q.Get(&count, blockingCountQuery, roomID, checkIn, checkOut)
	return count, err
}

// IsRoomAvailable reports whether the room has no blocking reservation
// overlapping [checkIn, checkOut). excludeReservationID, when non-nil,
// ignores that reservation so an existing booking can be re-validated
// against its own dates.
func (r *ReservationRepository) IsRoomAvailable(roomID int, checkIn, checkOut time.Time, excludeReservationID *int) (bool, error) {
	count, err := countBlockingReservations(r.db, roomID, checkIn, checkOut, excludeReservationID)
	if err != nil {
		return false, fmt.Errorf("failed to check room availability: %w", err)
	}
	return count == 0, nil
}

const reservationColumns = `reservation_id, guest_id, room_id, check_in_date, check_out_date,
	       adults, children, total_amount, status, special_requests, created_at`

// Create inserts a new reservation with status Confirmed. The availability
// check runs inside the same transaction as the insert; checking before the
// transaction would leave a race window between check and insert. On
// conflict nothing is written and ErrRoomUnavailable is returned.
func (r *ReservationRepository) Create(req *models.CreateReservationRequest) (*models.Reservation, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := countBlockingReservations(tx, req.RoomID, req.CheckIn(), req.CheckOut(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check room availability: %w", err)
	}
	if count > 0 {
		return nil, ErrRoomUnavailable
	}

	reservation := &models.Reservation{}
	query := `
		INSERT INTO reservations (
			guest_id, room_id, check_in_date, check_out_date,
			adults, children, total_amount, special_requests, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, 'Confirmed'
		)
		RETURNING ` + reservationColumns

	err = tx.Get(reservation, query,
		req.GuestID, req.RoomID, req.CheckIn(), req.CheckOut(),
		req.Adults, req.Children, req.TotalAmount, req.SpecialRequests,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return reservation, nil
}

// UpdateStatus transitions a reservation to a new status inside a
// transaction, reading the current row first. Any status may move to any
// other status; the read-then-write shape exists so transition guards can be
// added without changing callers.
func (r *ReservationRepository) UpdateStatus(reservationID int, status models.ReservationStatus) (*models.Reservation, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current models.Reservation
	err = tx.Get(&current, `SELECT `+reservationColumns+` FROM reservations WHERE reservation_id = $1`, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	updated := &models.Reservation{}
	err = tx.Get(updated, `
		UPDATE reservations SET status = $1 WHERE reservation_id = $2
		RETURNING `+reservationColumns, status, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}

const reservationDetailQuery = `
	SELECT r.reservation_id, r.guest_id, r.room_id,
	       g.first_name || ' ' || g.last_name AS guest_name,
	       g.email AS guest_email,
	       rm.room_number, h.hotel_name,
	       rt.type_name AS room_type,
	       r.check_in_date, r.check_out_date,
	       r.adults, r.children, r.total_amount, r.status,
	       r.special_requests, r.created_at
	FROM reservations r
	JOIN guests g ON r.guest_id = g.guest_id
	JOIN rooms rm ON r.room_id = rm.room_id
	JOIN hotels h ON rm.hotel_id = h.hotel_id
	JOIN room_types rt ON rm.room_type_id = rt.room_type_id`

// List retrieves all reservations with guest, room and hotel details
func (r *ReservationRepository) List() ([]models.ReservationDetail, error) {
	reservations := []models.ReservationDetail{}
	query := reservationDetailQuery + `
	ORDER BY r.check_in_date DESC, r.created_at DESC`

	if err := r.db.Select(&reservations, query); err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// GetByID retrieves a single reservation with guest, room and hotel details
func (r *ReservationRepository) GetByID(reservationID int) (*models.ReservationDetail, error) {
	reservation := &models.ReservationDetail{}
	query := reservationDetailQuery + `
	WHERE r.reservation_id = $1`

	if err := r.db.Get(reservation, query, reservationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return reservation, nil
}

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/grandstay/hotel-backend/internal/models"
)

// RoomRepository handles database operations for rooms and hotels
type RoomRepository struct {
	db DB
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// List retrieves the full rooms board across all hotels. available_from is
// the checkout date of the current occupant for Occupied rooms.
func (r *RoomRepository) List() ([]models.RoomListing, error) {
	rooms := []models.RoomListing{}
	query := `
		SELECT
			h.hotel_name,
			rm.room_id,
			rm.room_number,
			rt.type_name,
			rt.base_price,
			rm.status,
			rm.floor_number,
			CASE
				WHEN rm.status = 'Occupied' THEN
					(SELECT res.check_out_date FROM reservations res
					 WHERE res.room_id = rm.room_id AND res.status = 'Checked-in'
					 LIMIT 1)
				ELSE NULL
			END AS available_from
		FROM rooms rm
		JOIN hotels h ON rm.hotel_id = h.hotel_id
		JOIN room_types rt ON rm.room_type_id = rt.room_type_id
		ORDER BY h.hotel_name, rm.room_number`

	if err := r.db.Select(&rooms, query); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// ListHotels retrieves all hotels for dropdown selection
func (r *RoomRepository) ListHotels() ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	query := `SELECT hotel_id, hotel_name, city, state FROM hotels ORDER BY hotel_name`

	if err := r.db.Select(&hotels, query); err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// Available retrieves rooms free for the half-open range
// [checkIn, checkOut), optionally filtered by hotel. A room qualifies when no
// Confirmed or Checked-in reservation overlaps the range.
func (r *RoomRepository) Available(checkIn, checkOut time.Time, hotelID *int) ([]models.AvailableRoom, error) {
	rooms := []models.AvailableRoom{}
	query := `
		SELECT rm.room_id, rm.room_number, rt.type_name, rt.base_price, h.hotel_name
		FROM rooms rm
		JOIN room_types rt ON rm.room_type_id = rt.room_type_id
		JOIN hotels h ON rm.hotel_id = h.hotel_id
		WHERE rm.status = 'Available'`

	args := []interface{}{checkIn, checkOut}
	if hotelID != nil {
		query += ` AND rm.hotel_id = $3`
		args = append(args, *hotelID)
	}

	query += `
		AND rm.room_id NOT IN (
			SELECT res.room_id
			FROM reservations res
			WHERE res.status IN ('Confirmed', 'Checked-in')
			AND NOT (res.check_out_date <= $1 OR res.check_in_date >= $2)
		)
		ORDER BY h.hotel_name, rm.room_number`

	if err := r.db.Select(&rooms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}

// ByHotel retrieves the rooms of one hotel for the reservation form. When
// both dates are given, rooms with an overlapping blocking reservation are
// filtered out.
func (r *RoomRepository) ByHotel(hotelID int, checkIn, checkOut *time.Time) ([]models.HotelRoom, error) {
	rooms := []models.HotelRoom{}
	query := `
		SELECT
			rm.room_id,
			rm.room_number,
			rt.type_name,
			rt.base_price,
			rt.max_occupancy,
			rt.amenities,
			rm.floor_number
		FROM rooms rm
		JOIN room_types rt ON rm.room_type_id = rt.room_type_id
		WHERE rm.hotel_id = $1 AND rm.status = 'Available'`

	args := []interface{}{hotelID}
	if checkIn != nil && checkOut != nil {
		query += `
		AND rm.room_id NOT IN (
			SELECT res.room_id
			FROM reservations res
			WHERE res.status IN ('Confirmed', 'Checked-in')
			AND NOT (res.check_out_date <= $2 OR res.check_in_date >= $3)
		)`
		args = append(args, *checkIn, *checkOut)
	}

	query += ` ORDER BY rt.base_price, rm.room_number`

	if err := r.db.Select(&rooms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rooms by hotel: %w", err)
	}
	return rooms, nil
}

// UpdateStatus sets the advisory room status. Single statement, no
// transaction needed.
func (r *RoomRepository) UpdateStatus(roomID int, status models.RoomStatus) (*models.Room, error) {
	room := &models.Room{}
	query := `
		UPDATE rooms SET status = $1 WHERE room_id = $2
		RETURNING room_id, hotel_id, room_type_id, room_number, floor_number, status`

	if err := r.db.Get(room, query, status, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update room status: %w", err)
	}
	return room, nil
}

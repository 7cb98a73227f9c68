package models

import (
	"errors"
	"time"
)

// RoomStatus is the coarse, advisory room state. Availability for a date
// range is derived from reservations, not from this field.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
	RoomOutOfOrder  RoomStatus = "Out of Order"
)

// Valid reports whether s is a known room status.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomOutOfOrder:
		return true
	}
	return false
}

// Room represents a row in the rooms table
type Room struct {
	RoomID      int        `json:"room_id" db:"room_id"`
	HotelID     int        `json:"hotel_id" db:"hotel_id"`
	RoomTypeID  int        `json:"room_type_id" db:"room_type_id"`
	RoomNumber  string     `json:"room_number" db:"room_number"`
	FloorNumber *int       `json:"floor_number,omitempty" db:"floor_number"`
	Status      RoomStatus `json:"status" db:"status"`
}

// RoomListing is the full rooms board: room joined with hotel and type,
// plus the checkout date of the current occupant for Occupied rooms.
type RoomListing struct {
	HotelName     string     `json:"hotel_name" db:"hotel_name"`
	RoomID        int        `json:"room_id" db:"room_id"`
	RoomNumber    string     `json:"room_number" db:"room_number"`
	TypeName      string     `json:"type_name" db:"type_name"`
	BasePrice     float64    `json:"base_price" db:"base_price"`
	Status        RoomStatus `json:"status" db:"status"`
	FloorNumber   *int       `json:"floor_number,omitempty" db:"floor_number"`
	AvailableFrom *time.Time `json:"available_from,omitempty" db:"available_from"`
}

// AvailableRoom is a room free for a requested date range
type AvailableRoom struct {
	RoomID     int     `json:"room_id" db:"room_id"`
	RoomNumber string  `json:"room_number" db:"room_number"`
	TypeName   string  `json:"type_name" db:"type_name"`
	BasePrice  float64 `json:"base_price" db:"base_price"`
	HotelName  string  `json:"hotel_name" db:"hotel_name"`
}

// HotelRoom is a room row for the reservation form, including capacity
type HotelRoom struct {
	RoomID       int     `json:"room_id" db:"room_id"`
	RoomNumber   string  `json:"room_number" db:"room_number"`
	TypeName     string  `json:"type_name" db:"type_name"`
	BasePrice    float64 `json:"base_price" db:"base_price"`
	MaxOccupancy int     `json:"max_occupancy" db:"max_occupancy"`
	Amenities    *string `json:"amenities,omitempty" db:"amenities"`
	FloorNumber  *int    `json:"floor_number,omitempty" db:"floor_number"`
}

// Hotel is a hotel row for dropdown selection
type Hotel struct {
	HotelID   int    `json:"hotel_id" db:"hotel_id"`
	HotelName string `json:"hotel_name" db:"hotel_name"`
	City      string `json:"city" db:"city"`
	State     string `json:"state" db:"state"`
}

// UpdateRoomStatusRequest represents a room status change
type UpdateRoomStatusRequest struct {
	Status RoomStatus `json:"status"`
}

// Validate validates the requested room status
func (r *UpdateRoomStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return errors.New("invalid status")
	}
	return nil
}

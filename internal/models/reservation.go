package models

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date wire format for check-in/check-out dates.
// Reservations use half-open [check_in, check_out) ranges, so a reservation
// ending on a day does not conflict with one starting the same day.
const DateLayout = "2006-01-02"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "Pending"
	ReservationConfirmed  ReservationStatus = "Confirmed"
	ReservationCheckedIn  ReservationStatus = "Checked-in"
	ReservationCheckedOut ReservationStatus = "Checked-out"
	ReservationCancelled  ReservationStatus = "Cancelled"
)

// Valid reports whether s is one of the five reservation statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCheckedIn,
		ReservationCheckedOut, ReservationCancelled:
		return true
	}
	return false
}

// Blocks reports whether a reservation in this status blocks room
// availability. Only Confirmed and Checked-in count.
func (s ReservationStatus) Blocks() bool {
	return s == ReservationConfirmed || s == ReservationCheckedIn
}

// Reservation represents a row in the reservations table
type Reservation struct {
	ReservationID   int               `json:"reservation_id" db:"reservation_id"`
	GuestID         int               `json:"guest_id" db:"guest_id"`
	RoomID          int               `json:"room_id" db:"room_id"`
	CheckInDate     time.Time         `json:"check_in_date" db:"check_in_date"`
	CheckOutDate    time.Time         `json:"check_out_date" db:"check_out_date"`
	Adults          int               `json:"adults" db:"adults"`
	Children        int               `json:"children" db:"children"`
	TotalAmount     float64           `json:"total_amount" db:"total_amount"`
	Status          ReservationStatus `json:"status" db:"status"`
	SpecialRequests *string           `json:"special_requests,omitempty" db:"special_requests"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}

// ReservationDetail is a reservation joined with guest, room and hotel info
type ReservationDetail struct {
	ReservationID   int               `json:"reservation_id" db:"reservation_id"`
	GuestID         int               `json:"guest_id" db:"guest_id"`
	RoomID          int               `json:"room_id" db:"room_id"`
	GuestName       string            `json:"guest_name" db:"guest_name"`
	GuestEmail      string            `json:"guest_email" db:"guest_email"`
	RoomNumber      string            `json:"room_number" db:"room_number"`
	HotelName       string            `json:"hotel_name" db:"hotel_name"`
	RoomType        string            `json:"room_type" db:"room_type"`
	CheckInDate     time.Time         `json:"check_in_date" db:"check_in_date"`
	CheckOutDate    time.Time         `json:"check_out_date" db:"check_out_date"`
	Adults          int               `json:"adults" db:"adults"`
	Children        int               `json:"children" db:"children"`
	TotalAmount     float64           `json:"total_amount" db:"total_amount"`
	Status          ReservationStatus `json:"status" db:"status"`
	SpecialRequests *string           `json:"special_requests,omitempty" db:"special_requests"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}

// CreateReservationRequest represents the request to create a reservation
type CreateReservationRequest struct {
	GuestID         int     `json:"guest_id"`
	RoomID          int     `json:"room_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	TotalAmount     float64 `json:"total_amount"`
	SpecialRequests *string `json:"special_requests,omitempty"`

	checkIn  time.Time
	checkOut time.Time
}

// Validate checks all preconditions before any database interaction.
// Adults defaults to 1 and children to 0 when omitted.
func (r *CreateReservationRequest) Validate() error {
	if r.GuestID == 0 || r.RoomID == 0 || r.CheckInDate == "" || r.CheckOutDate == "" || r.TotalAmount == 0 {
		return errors.New("missing required fields")
	}

	if r.TotalAmount <= 0 {
		return errors.New("total_amount must be greater than 0")
	}

	if r.Adults == 0 {
		r.Adults = 1
	}
	if r.Adults < 1 {
		return errors.New("at least 1 adult is required")
	}
	if r.Children < 0 {
		return errors.New("children cannot be negative")
	}

	checkIn, err := time.Parse(DateLayout, r.CheckInDate)
	if err != nil {
		return errors.New("check_in_date must be formatted as YYYY-MM-DD")
	}
	checkOut, err := time.Parse(DateLayout, r.CheckOutDate)
	if err != nil {
		return errors.New("check_out_date must be formatted as YYYY-MM-DD")
	}

	if !checkIn.Before(checkOut) {
		return errors.New("check-out date must be after check-in date")
	}

	r.checkIn = checkIn
	r.checkOut = checkOut
	return nil
}

// CheckIn returns the parsed check-in date. Valid only after Validate.
func (r *CreateReservationRequest) CheckIn() time.Time { return r.checkIn }

// CheckOut returns the parsed check-out date. Valid only after Validate.
func (r *CreateReservationRequest) CheckOut() time.Time { return r.checkOut }

// UpdateReservationStatusRequest represents a status-transition request
type UpdateReservationStatusRequest struct {
	Status ReservationStatus `json:"status"`
}

// Validate validates the requested status value
func (r *UpdateReservationStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return errors.New("invalid status")
	}
	return nil
}

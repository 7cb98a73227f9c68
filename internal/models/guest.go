package models

import (
	"errors"
	"time"
)

// Guest represents a row in the guests table
type Guest struct {
	GuestID       int        `json:"guest_id" db:"guest_id"`
	FirstName     string     `json:"first_name" db:"first_name"`
	LastName      string     `json:"last_name" db:"last_name"`
	Email         string     `json:"email" db:"email"`
	Phone         string     `json:"phone" db:"phone"`
	Address       *string    `json:"address,omitempty" db:"address"`
	City          *string    `json:"city,omitempty" db:"city"`
	State         *string    `json:"state,omitempty" db:"state"`
	ZipCode       *string    `json:"zip_code,omitempty" db:"zip_code"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	IDNumber      *string    `json:"id_number,omitempty" db:"id_number"`
	Nationality   *string    `json:"nationality,omitempty" db:"nationality"`
	LoyaltyPoints int        `json:"loyalty_points" db:"loyalty_points"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// GuestSummary is the guest listing row with reservation aggregates.
// Cancelled reservations are excluded from the aggregates.
type GuestSummary struct {
	GuestID           int        `json:"guest_id" db:"guest_id"`
	GuestName         string     `json:"guest_name" db:"guest_name"`
	Email             string     `json:"email" db:"email"`
	Phone             string     `json:"phone" db:"phone"`
	TotalReservations int        `json:"total_reservations" db:"total_reservations"`
	TotalSpent        float64    `json:"total_spent" db:"total_spent"`
	LoyaltyPoints     int        `json:"loyalty_points" db:"loyalty_points"`
	LastVisit         *time.Time `json:"last_visit,omitempty" db:"last_visit"`
}

// GuestRequest carries the writable guest fields for create and update
type GuestRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	ZipCode     *string `json:"zip_code,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	IDNumber    *string `json:"id_number,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

// Validate validates the guest request
func (r *GuestRequest) Validate() error {
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Phone == "" {
		return errors.New("first name, last name, email, and phone are required")
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, err := time.Parse(DateLayout, *r.DateOfBirth); err != nil {
			return errors.New("date_of_birth must be formatted as YYYY-MM-DD")
		}
	}

	return nil
}

// DeletedGuestResponse is returned after a successful guest deletion
type DeletedGuestResponse struct {
	Message string `json:"message"`
	Guest   *Guest `json:"guest"`
}

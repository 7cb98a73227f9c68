package models

import (
	"errors"
	"time"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
	PaymentOnline     PaymentMethod = "Online"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentOnline:
		return true
	}
	return false
}

// PaymentStatus represents the lifecycle state of a payment. It is
// independent of the reservation lifecycle; multiple payments may reference
// one reservation.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment represents a row in the payments table
type Payment struct {
	PaymentID     int           `json:"payment_id" db:"payment_id"`
	ReservationID int           `json:"reservation_id" db:"reservation_id"`
	Amount        float64       `json:"amount" db:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method" db:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	TransactionID *string       `json:"transaction_id,omitempty" db:"transaction_id"`
	PaymentDate   time.Time     `json:"payment_date" db:"payment_date"`
}

// PaymentDetail is a payment joined with reservation, guest and room info
type PaymentDetail struct {
	PaymentID         int           `json:"payment_id" db:"payment_id"`
	ReservationID     int           `json:"reservation_id" db:"reservation_id"`
	Amount            float64       `json:"amount" db:"amount"`
	PaymentMethod     PaymentMethod `json:"payment_method" db:"payment_method"`
	PaymentStatus     PaymentStatus `json:"payment_status" db:"payment_status"`
	TransactionID     *string       `json:"transaction_id,omitempty" db:"transaction_id"`
	PaymentDate       time.Time     `json:"payment_date" db:"payment_date"`
	GuestName         string        `json:"guest_name" db:"guest_name"`
	GuestEmail        string        `json:"guest_email" db:"guest_email"`
	CheckInDate       time.Time     `json:"check_in_date" db:"check_in_date"`
	CheckOutDate      time.Time     `json:"check_out_date" db:"check_out_date"`
	ReservationAmount float64       `json:"reservation_amount" db:"reservation_amount"`
	RoomNumber        string        `json:"room_number" db:"room_number"`
	HotelName         string        `json:"hotel_name" db:"hotel_name"`
}

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	ReservationID int           `json:"reservation_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	TransactionID *string       `json:"transaction_id,omitempty"`
}

// Validate validates the create payment request. Payment totals are not
// reconciled against the reservation total.
func (r *CreatePaymentRequest) Validate() error {
	if r.ReservationID == 0 || r.Amount == 0 || r.PaymentMethod == "" {
		return errors.New("missing required fields")
	}

	if r.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}

	if !r.PaymentMethod.Valid() {
		return errors.New("invalid payment method")
	}

	return nil
}

// UpdatePaymentStatusRequest represents a payment status change
type UpdatePaymentStatusRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// Validate validates the requested payment status
func (r *UpdatePaymentStatusRequest) Validate() error {
	if !r.PaymentStatus.Valid() {
		return errors.New("invalid payment status")
	}
	return nil
}

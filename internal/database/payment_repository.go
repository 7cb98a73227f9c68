package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/grandstay/hotel-backend/internal/models"
)

// PaymentRepository handles database operations for the payments table
type PaymentRepository struct {
	db DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `payment_id, reservation_id, amount, payment_method, payment_status,
	       transaction_id, payment_date`

// List retrieves all payments with reservation and guest details
func (r *PaymentRepository) List() ([]models.PaymentDetail, error) {
	payments := []models.PaymentDetail{}
	query := `
		SELECT
			p.payment_id,
			p.reservation_id,
			p.amount,
			p.payment_method,
			p.payment_status,
			p.transaction_id,
			p.payment_date,
			g.first_name || ' ' || g.last_name AS guest_name,
			g.email AS guest_email,
			res.check_in_date,
			res.check_out_date,
			res.total_amount AS reservation_amount,
			rm.room_number,
			h.hotel_name
		FROM payments p
		JOIN reservations res ON p.reservation_id = res.reservation_id
		JOIN guests g ON res.guest_id = g.guest_id
		JOIN rooms rm ON res.room_id = rm.room_id
		JOIN hotels h ON rm.hotel_id = h.hotel_id
		ORDER BY p.payment_date DESC`

	if err := r.db.Select(&payments, query); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// Create records a payment inside a transaction: verify the reservation
// exists, then insert with payment_status Completed. A missing reservation
// returns ErrNotFound and writes nothing. Payment totals are not reconciled
// against the reservation total.
func (r *PaymentRepository) Create(req *models.CreatePaymentRequest) (*models.Payment, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var reservationID int
	err = tx.Get(&reservationID, `SELECT reservation_id FROM reservations WHERE reservation_id = $1`, req.ReservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify reservation: %w", err)
	}

	payment := &models.Payment{}
	query := `
		INSERT INTO payments (reservation_id, amount, payment_method, transaction_id, payment_status)
		VALUES ($1, $2, $3, $4, 'Completed')
		RETURNING ` + paymentColumns

	err = tx.Get(payment, query, req.ReservationID, req.Amount, req.PaymentMethod, req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return payment, nil
}

// UpdateStatus sets the payment status. Single statement, no transaction
// needed.
func (r *PaymentRepository) UpdateStatus(paymentID int, status models.PaymentStatus) (*models.Payment, error) {
	payment := &models.Payment{}
	query := `
		UPDATE payments SET payment_status = $1 WHERE payment_id = $2
		RETURNING ` + paymentColumns

	if err := r.db.Get(payment, query, status, paymentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return payment, nil
}

// ByReservation retrieves all payments recorded against a reservation
func (r *PaymentRepository) ByReservation(reservationID int) ([]models.Payment, error) {
	payments := []models.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE reservation_id = $1 ORDER BY payment_date DESC`

	if err := r.db.Select(&payments, query, reservationID); err != nil {
		return nil, fmt.Errorf("failed to list payments for reservation: %w", err)
	}
	return payments, nil
}

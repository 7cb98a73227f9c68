package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/grandstay/hotel-backend/internal/models"
)

// GuestRepository handles database operations for the guests table
type GuestRepository struct {
	db DB
}

// NewGuestRepository creates a new GuestRepository
func NewGuestRepository(db DB) *GuestRepository {
	return &GuestRepository{db: db}
}

const guestColumns = `guest_id, first_name, last_name, email, phone, address, city, state,
	       zip_code, date_of_birth, id_number, nationality, loyalty_points, created_at`

// List retrieves all guests with their reservation summary. Cancelled
// reservations do not count toward the aggregates.
func (r *GuestRepository) List() ([]models.GuestSummary, error) {
	guests := []models.GuestSummary{}
	query := `
		SELECT
			g.guest_id,
			g.first_name || ' ' || g.last_name AS guest_name,
			g.email,
			g.phone,
			COUNT(res.reservation_id) AS total_reservations,
			COALESCE(SUM(res.total_amount), 0) AS total_spent,
			g.loyalty_points,
			MAX(res.check_out_date) AS last_visit
		FROM guests g
		LEFT JOIN reservations res ON g.guest_id = res.guest_id AND res.status != 'Cancelled'
		GROUP BY g.guest_id, g.first_name, g.last_name, g.email, g.phone, g.loyalty_points
		ORDER BY g.last_name, g.first_name`

	if err := r.db.Select(&guests, query); err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

// Create inserts a new guest. A duplicate email returns ErrDuplicateEmail.
func (r *GuestRepository) Create(req *models.GuestRequest) (*models.Guest, error) {
	guest := &models.Guest{}
	query := `
		INSERT INTO guests (
			first_name, last_name, email, phone, address, city, state,
			zip_code, date_of_birth, id_number, nationality
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING ` + guestColumns

	err := r.db.Get(guest, query,
		req.FirstName, req.LastName, req.Email, req.Phone, req.Address,
		req.City, req.State, req.ZipCode, req.DateOfBirth, req.IDNumber, req.Nationality,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest, nil
}

// GetByID retrieves a guest by ID
func (r *GuestRepository) GetByID(guestID int) (*models.Guest, error) {
	guest := &models.Guest{}
	query := `SELECT ` + guestColumns + ` FROM guests WHERE guest_id = $1`

	if err := r.db.Get(guest, query, guestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}
	return guest, nil
}

// Update replaces the writable fields of a guest
func (r *GuestRepository) Update(guestID int, req *models.GuestRequest) (*models.Guest, error) {
	guest := &models.Guest{}
	query := `
		UPDATE guests
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
		    address = $5, city = $6, state = $7, zip_code = $8,
		    date_of_birth = $9, id_number = $10, nationality = $11
		WHERE guest_id = $12
		RETURNING ` + guestColumns

	err := r.db.Get(guest, query,
		req.FirstName, req.LastName, req.Email, req.Phone, req.Address,
		req.City, req.State, req.ZipCode, req.DateOfBirth, req.IDNumber, req.Nationality,
		guestID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}
	return guest, nil
}

// Delete removes a guest inside a transaction. Deletion is blocked, not
// cascaded: any reservation row referencing the guest, in any status
// including Cancelled, returns ErrGuestHasReservations.
func (r *GuestRepository) Delete(guestID int) (*models.Guest, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var reservationCount int
	err = tx.Get(&reservationCount, `SELECT COUNT(*) FROM reservations WHERE guest_id = $1`, guestID)
	if err != nil {
		return nil, fmt.Errorf("failed to check guest reservations: %w", err)
	}
	if reservationCount > 0 {
		return nil, ErrGuestHasReservations
	}

	guest := &models.Guest{}
	err = tx.Get(guest, `DELETE FROM guests WHERE guest_id = $1 RETURNING `+guestColumns, guestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete guest: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return guest, nil
}

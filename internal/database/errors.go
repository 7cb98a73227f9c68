package database

import (
	"errors"

	"github.com/lib/pq"
)

// Business-rule failures surfaced by repositories. Handlers translate these
// into HTTP statuses; anything else is an unexpected database error.
var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRoomUnavailable means a blocking reservation overlaps the requested dates.
	ErrRoomUnavailable = errors.New("room is not available for selected dates")

	// ErrGuestHasReservations blocks guest deletion while any reservation rows
	// reference the guest, regardless of reservation status.
	ErrGuestHasReservations = errors.New("guest has existing reservations")

	// ErrDuplicateEmail maps the unique constraint on guests.email.
	ErrDuplicateEmail = errors.New("email already exists")
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

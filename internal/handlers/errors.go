package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grandstay/hotel-backend/internal/database"
)

// handleRepoError maps the repository error taxonomy onto HTTP statuses.
// Business-rule failures become 4xx with their specific message; anything
// unanticipated becomes a 500 with detail suppressed outside development.
func handleRepoError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, database.ErrRoomUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Room is not available for selected dates"})
	case errors.Is(err, database.ErrGuestHasReservations):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete guest with existing reservations. Cancel reservations first."})
	case errors.Is(err, database.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
	default:
		internalError(c, err)
	}
}

// internalError responds 500 with a generic message. The underlying error is
// attached to the context so the request logger records it.
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)

	resp := gin.H{"error": "Internal server error"}
	if c.GetString("environment") == "development" {
		resp["message"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

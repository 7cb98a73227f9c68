package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandstay/hotel-backend/internal/database"
)

func newRoomRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	handler := NewRoomHandler(database.NewRoomRepository(db))

	router := gin.New()
	router.GET("/api/rooms", handler.ListRooms)
	router.GET("/api/rooms/available", handler.AvailableRooms)
	router.GET("/api/hotels", handler.ListHotels)
	router.GET("/api/rooms/by-hotel/:hotel_id", handler.RoomsByHotel)
	router.PUT("/api/rooms/:id/status", handler.UpdateRoomStatus)
	return router, mock
}

func TestAvailableRoomsEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mock := newRoomRouter(t)

		mock.ExpectQuery(`SELECT .+ FROM rooms rm .+ NOT IN`).
			WillReturnRows(sqlmock.NewRows([]string{
				"room_id", "room_number", "type_name", "base_price", "hotel_name",
			}).AddRow(42, "204", "Deluxe", 150.00, "GrandStay Downtown"))

		w := performRequest(router, http.MethodGet,
			"/api/rooms/available?check_in=2025-03-01&check_out=2025-03-05", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Dates", func(t *testing.T) {
		router, mock := newRoomRouter(t)

		w := performRequest(router, http.MethodGet, "/api/rooms/available?check_in=2025-03-01", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Check-in and check-out dates are required", decodeBody(t, w)["error"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Bad Date Format", func(t *testing.T) {
		router, mock := newRoomRouter(t)

		w := performRequest(router, http.MethodGet,
			"/api/rooms/available?check_in=03-01-2025&check_out=2025-03-05", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "check_in must be formatted as YYYY-MM-DD", decodeBody(t, w)["error"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid Hotel ID", func(t *testing.T) {
		router, mock := newRoomRouter(t)

		w := performRequest(router, http.MethodGet,
			"/api/rooms/available?check_in=2025-03-01&check_out=2025-03-05&hotel_id=abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid hotel ID", decodeBody(t, w)["error"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomsByHotelEndpoint(t *testing.T) {
	t.Run("Dates Optional", func(t *testing.T) {
		router, mock := newRoomRouter(t)

		mock.ExpectQuery(`SELECT .+ FROM rooms rm .+ WHERE rm.hotel_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{
				"room_id", "room_number", "type_name", "base_price",
				"max_occupancy", "amenities", "floor_number",
			}).AddRow(61, "101", "Standard", 95.00, 2, nil, 1))

		w := performRequest(router, http.MethodGet, "/api/rooms/by-hotel/3", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateRoomStatusEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mock := newRoomRouter(t)

		mock.ExpectQuery(`UPDATE rooms SET status`).
			WillReturnRows(sqlmock.NewRows([]string{
				"room_id", "hotel_id", "room_type_id", "room_number", "floor_number", "status",
			}).AddRow(42, 1, 2, "204", 2, "Maintenance"))

		w := performRequest(router, http.MethodPut, "/api/rooms/42/status", gin.H{"status": "Maintenance"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Maintenance", decodeBody(t, w)["status"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid Status", func(t *testing.T) {
		router, mock := newRoomRouter(t)

		w := performRequest(router, http.MethodPut, "/api/rooms/42/status", gin.H{"status": "Broken"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid status", decodeBody(t, w)["error"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		router, mock := newRoomRouter(t)

		mock.ExpectQuery(`UPDATE rooms SET status`).
			WillReturnRows(sqlmock.NewRows([]string{"room_id"}))

		w := performRequest(router, http.MethodPut, "/api/rooms/999/status", gin.H{"status": "Available"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Room not found", decodeBody(t, w)["error"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListHotelsEndpoint(t *testing.T) {
	router, mock := newRoomRouter(t)

	mock.ExpectQuery(`SELECT hotel_id, hotel_name, city, state FROM hotels`).
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id", "hotel_name", "city", "state"}).
			AddRow(1, "GrandStay Downtown", "Austin", "TX"))

	w := performRequest(router, http.MethodGet, "/api/hotels", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var hotels []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hotels))
	require.Len(t, hotels, 1)
	assert.Equal(t, "GrandStay Downtown", hotels[0]["hotel_name"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

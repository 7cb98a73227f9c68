package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_backend",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	reservationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_backend",
			Name:      "reservations_created_total",
			Help:      "Reservations successfully created.",
		},
	)

	reservationConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_backend",
			Name:      "reservation_conflicts_total",
			Help:      "Reservation attempts rejected because the room was unavailable.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, reservationsCreated, reservationConflicts)
	})
}

// IncHTTP increments the request counter for a method/path/status triple.
func IncHTTP(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}

// IncReservationCreated counts a successful booking.
func IncReservationCreated() {
	reservationsCreated.Inc()
}

// IncReservationConflict counts a booking rejected by the availability check.
func IncReservationConflict() {
	reservationConflicts.Inc()
}

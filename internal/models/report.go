package models

import "time"

// RevenueReport is the total revenue for a date range
type RevenueReport struct {
	TotalRevenue float64 `json:"total_revenue" db:"total_revenue"`
}

// DailyRevenue is one day of booking revenue for a hotel
type DailyRevenue struct {
	RevenueDate     time.Time `json:"revenue_date" db:"revenue_date"`
	HotelName       string    `json:"hotel_name" db:"hotel_name"`
	TotalBookings   int       `json:"total_bookings" db:"total_bookings"`
	DailyRevenue    float64   `json:"daily_revenue" db:"daily_revenue"`
	AvgBookingValue float64   `json:"avg_booking_value" db:"avg_booking_value"`
}

// OccupancyReport is the occupancy percentage for a hotel on a date
type OccupancyReport struct {
	OccupancyRate float64 `json:"occupancy_rate" db:"occupancy_rate"`
}

// GuestStats are summary statistics over the guests table
type GuestStats struct {
	TotalGuests      int      `json:"total_guests" db:"total_guests"`
	LoyaltyMembers   int      `json:"loyalty_members" db:"loyalty_members"`
	AvgLoyaltyPoints *float64 `json:"avg_loyalty_points" db:"avg_loyalty_points"`
	MaxLoyaltyPoints *int     `json:"max_loyalty_points" db:"max_loyalty_points"`
}

// RoomUtilization is per-room-type status counts and occupancy percentage
type RoomUtilization struct {
	TypeName            string  `json:"type_name" db:"type_name"`
	TotalRooms          int     `json:"total_rooms" db:"total_rooms"`
	AvailableRooms      int     `json:"available_rooms" db:"available_rooms"`
	OccupiedRooms       int     `json:"occupied_rooms" db:"occupied_rooms"`
	MaintenanceRooms    int     `json:"maintenance_rooms" db:"maintenance_rooms"`
	OccupancyPercentage float64 `json:"occupancy_percentage" db:"occupancy_percentage"`
}

// GuestReservationRow is one row of the guests-with-reservations listing.
// Reservation columns are null for guests without reservations.
type GuestReservationRow struct {
	GuestID           int                `json:"guest_id" db:"guest_id"`
	FirstName         string             `json:"first_name" db:"first_name"`
	LastName          string             `json:"last_name" db:"last_name"`
	Email             string             `json:"email" db:"email"`
	ReservationID     *int               `json:"reservation_id,omitempty" db:"reservation_id"`
	CheckInDate       *time.Time         `json:"check_in_date,omitempty" db:"check_in_date"`
	CheckOutDate      *time.Time         `json:"check_out_date,omitempty" db:"check_out_date"`
	TotalAmount       *float64           `json:"total_amount,omitempty" db:"total_amount"`
	ReservationStatus *ReservationStatus `json:"reservation_status,omitempty" db:"reservation_status"`
}

// ReservationGuestRow is one row of the reservations-with-guests listing
type ReservationGuestRow struct {
	FirstName     *string           `json:"first_name,omitempty" db:"first_name"`
	LastName      *string           `json:"last_name,omitempty" db:"last_name"`
	Email         *string           `json:"email,omitempty" db:"email"`
	ReservationID int               `json:"reservation_id" db:"reservation_id"`
	CheckInDate   time.Time         `json:"check_in_date" db:"check_in_date"`
	CheckOutDate  time.Time         `json:"check_out_date" db:"check_out_date"`
	TotalAmount   float64           `json:"total_amount" db:"total_amount"`
	Status        ReservationStatus `json:"status" db:"status"`
	RoomNumber    *string           `json:"room_number,omitempty" db:"room_number"`
	HotelName     *string           `json:"hotel_name,omitempty" db:"hotel_name"`
}

// StaffServiceRow is one row of the staff/service-request full outer join
type StaffServiceRow struct {
	StaffID        *int       `json:"staff_id,omitempty" db:"staff_id"`
	FirstName      *string    `json:"first_name,omitempty" db:"first_name"`
	LastName       *string    `json:"last_name,omitempty" db:"last_name"`
	Department     *string    `json:"department,omitempty" db:"department"`
	Position       *string    `json:"position,omitempty" db:"position"`
	RequestID      *int       `json:"request_id,omitempty" db:"request_id"`
	RequestStatus  *string    `json:"request_status,omitempty" db:"request_status"`
	ServiceName    *string    `json:"service_name,omitempty" db:"service_name"`
	RequestDate    *time.Time `json:"request_date,omitempty" db:"request_date"`
	CompletionDate *time.Time `json:"completion_date,omitempty" db:"completion_date"`
}

// GuestTier labels guests by non-cancelled reservation count:
// <2 Bronze, 2-4 Silver, 5-9 Gold, >=10 VIP.
type GuestTier string

const (
	TierBronze GuestTier = "Bronze"
	TierSilver GuestTier = "Silver"
	TierGold   GuestTier = "Gold"
	TierVIP    GuestTier = "VIP"
)

// GuestLoyaltyRow is one row of the guest loyalty analysis
type GuestLoyaltyRow struct {
	GuestID             int        `json:"guest_id" db:"guest_id"`
	GuestName           string     `json:"guest_name" db:"guest_name"`
	Email               string     `json:"email" db:"email"`
	LoyaltyPoints       int        `json:"loyalty_points" db:"loyalty_points"`
	TotalReservations   int        `json:"total_reservations" db:"total_reservations"`
	TotalSpent          float64    `json:"total_spent" db:"total_spent"`
	TotalPayments       int        `json:"total_payments" db:"total_payments"`
	TotalPaid           float64    `json:"total_paid" db:"total_paid"`
	AvgReservationValue *float64   `json:"avg_reservation_value" db:"avg_reservation_value"`
	LastVisit           *time.Time `json:"last_visit,omitempty" db:"last_visit"`
	GuestTier           GuestTier  `json:"guest_tier" db:"guest_tier"`
}

// RoomTypeRevenueRow is monthly revenue per room type with price premium
// relative to the type's base price
type RoomTypeRevenueRow struct {
	TypeName              string    `json:"type_name" db:"type_name"`
	Month                 time.Time `json:"month" db:"month"`
	Bookings              int       `json:"bookings" db:"bookings"`
	TotalRevenue          float64   `json:"total_revenue" db:"total_revenue"`
	AvgRevenuePerBooking  float64   `json:"avg_revenue_per_booking" db:"avg_revenue_per_booking"`
	BasePrice             float64   `json:"base_price" db:"base_price"`
	PricePremiumPercent   float64   `json:"price_premium_percentage" db:"price_premium_percentage"`
}

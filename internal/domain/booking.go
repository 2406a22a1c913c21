package domain

import "time"

type BookingStatus string

const (
	StatusPendingCheckin BookingStatus = "pending-checkin"
	StatusCheckedIn      BookingStatus = "checked-in"
	StatusCheckedOut     BookingStatus = "checked-out"
	StatusCancelled      BookingStatus = "cancelled"
	StatusNoShow         BookingStatus = "no-show"
)

// Active reports whether a booking in this status still occupies its spaces.
func (s BookingStatus) Active() bool {
	switch s {
	case StatusCancelled, StatusNoShow, StatusCheckedOut:
		return false
	}
	return true
}

// Booking is one reservation over a half-open interval [Checkin, Checkout).
// Status transitions after creation belong to the front-desk workflow.
type Booking struct {
	ID               int64         `json:"booking_id"`
	Checkin          time.Time     `json:"checkin"`
	Checkout         time.Time     `json:"checkout"`
	CustomerID       int64         `json:"customer_id"`
	Status           BookingStatus `json:"booking_status"`
	CustomerSourceID int64         `json:"customer_source_id"`
	CorrelationID    string        `json:"correlation_id,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// BookingDetail assigns one physical space to one booking.
type BookingDetail struct {
	BookingID int64 `json:"booking_id"`
	SpaceID   int64 `json:"space_id"`
}

// BookingServiceGroup anchors the service selections of one booking. It is
// created even when no services are selected so the invoice has something
// to reference.
type BookingServiceGroup struct {
	ID int64 `json:"booking_service_id"`
}

// ServiceSelection is one metered service ordered under a group.
type ServiceSelection struct {
	BookingServiceID int64 `json:"booking_service_id"`
	ServiceID        int64 `json:"service_id"`
	Quantity         int   `json:"service_quantity"`
}

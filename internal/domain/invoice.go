package domain

import "time"

// Invoice snapshots the computed total at commit time. It is never
// recomputed afterwards.
type Invoice struct {
	BookingID        int64     `json:"booking_id"`
	BookingServiceID int64     `json:"booking_service_id"`
	Total            float64   `json:"total"`
	PaymentMethod    *string   `json:"payment_method,omitempty"`
	CustomerID       int64     `json:"customer_id"`
	CreateDate       time.Time `json:"create_date"`
}

package booking

import "time"

type CommitRequest struct {
	Checkin  time.Time             `json:"checkin" binding:"required"`
	Checkout time.Time             `json:"checkout" binding:"required"`
	SpaceIDs []int64               `json:"space_ids" binding:"required"`
	Services []ServiceSelectionDTO `json:"services"`
	Customer CustomerDTO           `json:"customer" binding:"required"`
}

type ServiceSelectionDTO struct {
	ServiceID int64 `json:"service_id" binding:"required"`
	Quantity  int   `json:"quantity"`
}

type CustomerDTO struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

type CommitResponse struct {
	BookingID      int64   `json:"booking_id"`
	Total          float64 `json:"total"`
	EstimatedHours float64 `json:"estimated_hours"`
}

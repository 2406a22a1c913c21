package availability

import "time"

type AvailabilityResponse struct {
	SpaceTypeID int64     `json:"space_type_id"`
	Checkin     time.Time `json:"checkin"`
	Checkout    time.Time `json:"checkout"`
	SpaceIDs    []int64   `json:"space_ids"`
}

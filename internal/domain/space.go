package domain

// SpaceType is immutable reference data describing a bookable category of
// workspace (flexible seat, meeting room, ...) and its hourly rate.
type SpaceType struct {
	ID              int64   `json:"space_type_id"`
	Name            string  `json:"space_name"`
	UnitPriceHourly float64 `json:"unit_price_hourly"`
}

// Space is a single physical, exclusively-occupiable unit of one SpaceType.
type Space struct {
	ID          int64 `json:"space_id"`
	SpaceTypeID int64 `json:"space_type_id"`
}

package catalog

type SpaceTypeSummary struct {
	SpaceTypeID     int64   `json:"space_type_id"`
	Name            string  `json:"space_name"`
	UnitPriceHourly float64 `json:"unit_price_hourly"`
	TotalSpaces     int64   `json:"total_spaces"`
}

type ServiceSummary struct {
	ServiceID int64   `json:"service_id"`
	Name      string  `json:"service_name"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

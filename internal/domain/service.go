package domain

// Service is a metered add-on (printing, coffee, ...) priced per unit.
type Service struct {
	ID        int64   `json:"service_id"`
	Name      string  `json:"service_name"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

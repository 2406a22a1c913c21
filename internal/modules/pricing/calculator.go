package pricing

import (
	"math"
	"time"

	"coworking/internal/pkg/interval"
)

// ServiceCharge is one metered service line for quoting.
type ServiceCharge struct {
	UnitPrice float64
	Quantity  int
}

// Quote is the derived price of a draft at one point in time.
type Quote struct {
	Hours float64
	Total float64
}

// Calculate derives the estimated hours and total for an interval, the
// hourly rates of the chosen spaces, and the selected services. The total
// is rounded to a whole currency unit. Pure: same inputs, same quote.
func Calculate(checkin, checkout time.Time, spaceRates []float64, services []ServiceCharge) Quote {
	hours := interval.DurationHours(checkin, checkout)

	var total float64
	for _, rate := range spaceRates {
		total += rate * hours
	}
	for _, sc := range services {
		total += sc.UnitPrice * float64(sc.Quantity)
	}
	return Quote{Hours: hours, Total: math.Round(total)}
}

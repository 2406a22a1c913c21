package booking

import (
	"time"

	"coworking/internal/modules/pricing"
)

// SelectedSpace is one chosen space with the rate resolved at selection time.
type SelectedSpace struct {
	SpaceID         int64
	SpaceTypeID     int64
	SpaceTypeName   string
	UnitPriceHourly float64
}

// SelectedService is one chosen metered service and its quantity.
type SelectedService struct {
	ServiceID int64
	Name      string
	Unit      string
	UnitPrice float64
	Quantity  int
}

type CustomerInfo struct {
	Name  string
	Phone string
	Email string
}

// Draft is the mutable pre-commit aggregate for one reservation attempt.
// Totals are derived through the pricing calculator on every read, never
// cached. Not safe for concurrent use; a draft belongs to one attempt.
type Draft struct {
	Checkin  time.Time
	Checkout time.Time
	Spaces   []SelectedSpace
	Services []SelectedService
	Customer CustomerInfo
}

func NewDraft() *Draft {
	return &Draft{}
}

func (d *Draft) SetInterval(checkin, checkout time.Time) {
	d.Checkin = checkin
	d.Checkout = checkout
}

// AddSpace is an idempotent union keyed by space identity.
func (d *Draft) AddSpace(s SelectedSpace) {
	for _, existing := range d.Spaces {
		if existing.SpaceID == s.SpaceID {
			return
		}
	}
	d.Spaces = append(d.Spaces, s)
}

func (d *Draft) RemoveSpace(spaceID int64) {
	for i, s := range d.Spaces {
		if s.SpaceID == spaceID {
			d.Spaces = append(d.Spaces[:i], d.Spaces[i+1:]...)
			return
		}
	}
}

// AddService sums quantities when the service is already selected.
func (d *Draft) AddService(s SelectedService, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i, existing := range d.Services {
		if existing.ServiceID == s.ServiceID {
			d.Services[i].Quantity += quantity
			return
		}
	}
	s.Quantity = quantity
	d.Services = append(d.Services, s)
}

// SetServiceQuantity replaces the quantity. An explicit zero is retained:
// the stepper UI counts down to zero before the user removes the line.
func (d *Draft) SetServiceQuantity(serviceID int64, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i, s := range d.Services {
		if s.ServiceID == serviceID {
			d.Services[i].Quantity = quantity
			return
		}
	}
}

func (d *Draft) RemoveService(serviceID int64) {
	for i, s := range d.Services {
		if s.ServiceID == serviceID {
			d.Services = append(d.Services[:i], d.Services[i+1:]...)
			return
		}
	}
}

func (d *Draft) quote() pricing.Quote {
	rates := make([]float64, 0, len(d.Spaces))
	for _, s := range d.Spaces {
		rates = append(rates, s.UnitPriceHourly)
	}
	charges := make([]pricing.ServiceCharge, 0, len(d.Services))
	for _, s := range d.Services {
		charges = append(charges, pricing.ServiceCharge{UnitPrice: s.UnitPrice, Quantity: s.Quantity})
	}
	return pricing.Calculate(d.Checkin, d.Checkout, rates, charges)
}

func (d *Draft) EstimatedHours() float64 {
	return d.quote().Hours
}

func (d *Draft) TotalAmount() float64 {
	return d.quote().Total
}

// Clear resets the draft after a successful commit.
func (d *Draft) Clear() {
	*d = Draft{}
}

package booking

import (
	"context"
	"time"

	"coworking/internal/domain"
)

type CustomerRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	MaxID(ctx context.Context) (int64, error)
	Create(ctx context.Context, c *domain.Customer) error
}

type BookingRepository interface {
	MaxID(ctx context.Context) (int64, error)
	Create(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, bookingID int64) error
	CreateDetail(ctx context.Context, d *domain.BookingDetail) error
	DeleteDetails(ctx context.Context, bookingID int64) error
	MaxServiceGroupID(ctx context.Context) (int64, error)
	CreateServiceGroup(ctx context.Context, g *domain.BookingServiceGroup) error
	DeleteServiceGroup(ctx context.Context, groupID int64) error
	CreateServiceSelection(ctx context.Context, sel *domain.ServiceSelection) error
	DeleteSelections(ctx context.Context, groupID int64) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	DeleteForBooking(ctx context.Context, bookingID int64) error
}

// SpaceFreeChecker re-verifies occupancy right before a detail insert.
type SpaceFreeChecker interface {
	IsSpaceFree(ctx context.Context, spaceID int64, checkin, checkout time.Time) (bool, error)
}

// SpaceReader and ServiceReader resolve reference data for incoming
// requests; rates are never trusted from the client.
type SpaceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	GetTypeByID(ctx context.Context, id int64) (*domain.SpaceType, error)
}

type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

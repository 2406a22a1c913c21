package availability

import (
	"context"
	"time"

	"coworking/internal/domain"
)

// BookingRepository is the read surface the resolver needs.
type BookingRepository interface {
	GetOverlapping(ctx context.Context, checkin, checkout time.Time) ([]domain.Booking, error)
	GetDetailsForBookings(ctx context.Context, bookingIDs []int64) ([]domain.BookingDetail, error)
}

// SpaceRepository lists the spaces of one type.
type SpaceRepository interface {
	GetByType(ctx context.Context, spaceTypeID int64) ([]domain.Space, error)
}

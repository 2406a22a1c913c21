package reconcile

import (
	"context"
	"time"

	"coworking/internal/domain"
)

type BookingRepository interface {
	FindIncomplete(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

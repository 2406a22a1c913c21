package reconcile

import (
	"context"
	"time"

	"coworking/internal/domain"

	"go.uber.org/zap"
)

// Service cleans up after commits that died between steps: a booking row
// old enough that its commit cannot still be in flight, with no invoice or
// no booking details, is cancelled so it stops occupying spaces.
type Service struct {
	bookings BookingRepository
	log      *zap.Logger
}

func NewService(bookings BookingRepository, log *zap.Logger) *Service {
	return &Service{bookings: bookings, log: log}
}

// Sweep cancels incomplete bookings created more than minAge ago and
// returns how many were cancelled.
func (s *Service) Sweep(ctx context.Context, minAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-minAge)

	orphans, err := s.bookings.FindIncomplete(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, b := range orphans {
		if err := s.bookings.UpdateStatus(ctx, b.ID, domain.StatusCancelled); err != nil {
			s.log.Error("reconcile: cancel failed",
				zap.Int64("booking_id", b.ID),
				zap.String("correlation_id", b.CorrelationID),
				zap.Error(err),
			)
			return cancelled, err
		}
		cancelled++
		s.log.Info("reconcile: cancelled incomplete booking",
			zap.Int64("booking_id", b.ID),
			zap.String("correlation_id", b.CorrelationID),
			zap.Time("created_at", b.CreatedAt),
		)
	}
	return cancelled, nil
}

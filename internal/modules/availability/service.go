package availability

import (
	"context"
	"time"

	"coworking/internal/domain"
)

type Service struct {
	bookings BookingRepository
	spaces   SpaceRepository
}

func NewService(bookings BookingRepository, spaces SpaceRepository) *Service {
	return &Service{bookings: bookings, spaces: spaces}
}

// FindAvailable returns the spaces of a type that are free over the
// half-open interval [checkin, checkout). Recomputed fresh on every call;
// any caching here would hand out spaces that were just taken.
func (s *Service) FindAvailable(ctx context.Context, spaceTypeID int64, checkin, checkout time.Time) ([]domain.Space, error) {
	if checkin.IsZero() || checkout.IsZero() || !checkout.After(checkin) {
		return nil, ErrValidation
	}

	occupied, err := s.occupiedSpaces(ctx, checkin, checkout)
	if err != nil {
		return nil, err
	}

	all, err := s.spaces.GetByType(ctx, spaceTypeID)
	if err != nil {
		return nil, err
	}

	free := make([]domain.Space, 0, len(all))
	for _, sp := range all {
		if !occupied[sp.ID] {
			free = append(free, sp)
		}
	}
	return free, nil
}

// IsSpaceFree re-evaluates the occupancy predicate for a single space. The
// commit path calls this right before writing each booking detail.
func (s *Service) IsSpaceFree(ctx context.Context, spaceID int64, checkin, checkout time.Time) (bool, error) {
	if checkin.IsZero() || checkout.IsZero() || !checkout.After(checkin) {
		return false, ErrValidation
	}
	occupied, err := s.occupiedSpaces(ctx, checkin, checkout)
	if err != nil {
		return false, err
	}
	return !occupied[spaceID], nil
}

// occupiedSpaces collects the space ids held by active bookings that overlap
// the interval. The store filters on the interval; status classification
// already happened at the repository boundary.
func (s *Service) occupiedSpaces(ctx context.Context, checkin, checkout time.Time) (map[int64]bool, error) {
	overlapping, err := s.bookings.GetOverlapping(ctx, checkin, checkout)
	if err != nil {
		return nil, err
	}

	activeIDs := make([]int64, 0, len(overlapping))
	for _, b := range overlapping {
		if b.Status.Active() {
			activeIDs = append(activeIDs, b.ID)
		}
	}

	details, err := s.bookings.GetDetailsForBookings(ctx, activeIDs)
	if err != nil {
		return nil, err
	}

	occupied := make(map[int64]bool, len(details))
	for _, d := range details {
		occupied[d.SpaceID] = true
	}
	return occupied, nil
}

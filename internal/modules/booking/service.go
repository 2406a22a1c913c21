package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coworking/internal/domain"
	"coworking/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SelfServiceSource is the customer_source_id stamped on bookings made
// through this flow, matching the legacy channel codes.
const SelfServiceSource int64 = 3

type Service struct {
	customers CustomerRepository
	bookings  BookingRepository
	invoices  InvoiceRepository
	checker   SpaceFreeChecker
	log       *zap.Logger
}

func NewService(
	customers CustomerRepository,
	bookings BookingRepository,
	invoices InvoiceRepository,
	checker SpaceFreeChecker,
	log *zap.Logger,
) *Service {
	return &Service{
		customers: customers,
		bookings:  bookings,
		invoices:  invoices,
		checker:   checker,
		log:       log,
	}
}

// Receipt is what the caller gets back from a successful commit.
type Receipt struct {
	BookingID      int64
	Total          float64
	EstimatedHours float64
	CorrelationID  string
}

// Commit materializes a draft: resolve-or-create the customer, allocate a
// booking and a service group, write the invoice, the booking details and
// the service selections. Not idempotent; calling it twice with the same
// draft creates two bookings. Each step is logged under one correlation id
// and a failure surfaces as a CommitError naming the step.
func (s *Service) Commit(ctx context.Context, d *Draft) (*Receipt, error) {
	if d == nil {
		return nil, ErrValidation
	}
	if d.Checkin.IsZero() || d.Checkout.IsZero() || !d.Checkout.After(d.Checkin) {
		return nil, ErrValidation
	}
	if len(d.Spaces) == 0 {
		return nil, ErrValidation
	}
	name := strings.TrimSpace(d.Customer.Name)
	phone := domain.NormalizePhone(d.Customer.Phone)
	if name == "" || phone == "" {
		return nil, ErrValidation
	}

	corrID := uuid.NewString()
	log := s.log.With(zap.String("correlation_id", corrID))

	// 1. resolve or create the customer, deduplicated on phone digits
	customer, err := s.customers.GetByPhone(ctx, phone)
	if err != nil {
		return nil, s.fail(log, "resolve-customer", corrID, err)
	}
	if customer == nil {
		customerID, err := allocateID(ctx, s.customers.MaxID, func(id int64) error {
			return s.customers.Create(ctx, &domain.Customer{
				ID:             id,
				Name:           name,
				Phone:          phone,
				Email:          strings.TrimSpace(d.Customer.Email),
				CustomerTypeID: domain.WalkInCustomerType,
			})
		})
		if err != nil {
			return nil, s.fail(log, "create-customer", corrID, err)
		}
		customer = &domain.Customer{ID: customerID}
		log.Debug("customer created", zap.Int64("customer_id", customerID))
	}

	// 2. booking row, pending-checkin
	bookingID, err := allocateID(ctx, s.bookings.MaxID, func(id int64) error {
		return s.bookings.Create(ctx, &domain.Booking{
			ID:               id,
			Checkin:          d.Checkin,
			Checkout:         d.Checkout,
			CustomerID:       customer.ID,
			Status:           domain.StatusPendingCheckin,
			CustomerSourceID: SelfServiceSource,
			CorrelationID:    corrID,
		})
	})
	if err != nil {
		return nil, s.fail(log, "create-booking", corrID, err)
	}

	// 3. service group, created even with no services so the invoice has
	// an anchor
	groupID, err := allocateID(ctx, s.bookings.MaxServiceGroupID, func(id int64) error {
		return s.bookings.CreateServiceGroup(ctx, &domain.BookingServiceGroup{ID: id})
	})
	if err != nil {
		return nil, s.fail(log, "create-service-group", corrID, err)
	}

	// 4. invoice snapshots the quoted total
	quote := d.quote()
	err = s.invoices.Create(ctx, &domain.Invoice{
		BookingID:        bookingID,
		BookingServiceID: groupID,
		Total:            quote.Total,
		CustomerID:       customer.ID,
		CreateDate:       time.Now().UTC(),
	})
	if err != nil {
		return nil, s.fail(log, "create-invoice", corrID, err)
	}

	// 5. one detail per space; re-verify the occupancy predicate right
	// before each insert, with the store constraint as the backstop
	for _, sp := range d.Spaces {
		free, err := s.checker.IsSpaceFree(ctx, sp.SpaceID, d.Checkin, d.Checkout)
		if err != nil {
			return nil, s.fail(log, "write-details", corrID, err)
		}
		if !free {
			s.compensate(ctx, log, bookingID, groupID)
			return nil, s.fail(log, "write-details", corrID,
				fmt.Errorf("%w: space %d is no longer free", ErrConflict, sp.SpaceID))
		}
		err = s.bookings.CreateDetail(ctx, &domain.BookingDetail{BookingID: bookingID, SpaceID: sp.SpaceID})
		if err != nil {
			if repository.IsDuplicateKey(err) {
				s.compensate(ctx, log, bookingID, groupID)
				return nil, s.fail(log, "write-details", corrID,
					fmt.Errorf("%w: space %d was taken concurrently", ErrConflict, sp.SpaceID))
			}
			return nil, s.fail(log, "write-details", corrID, err)
		}
	}

	// 6. service selections, zero-quantity lines pruned
	for _, sv := range d.Services {
		if sv.Quantity <= 0 {
			continue
		}
		err = s.bookings.CreateServiceSelection(ctx, &domain.ServiceSelection{
			BookingServiceID: groupID,
			ServiceID:        sv.ServiceID,
			Quantity:         sv.Quantity,
		})
		if err != nil {
			return nil, s.fail(log, "write-selections", corrID, err)
		}
	}

	log.Info("booking committed",
		zap.Int64("booking_id", bookingID),
		zap.Int64("customer_id", customer.ID),
		zap.Float64("total", quote.Total),
		zap.Float64("hours", quote.Hours),
	)

	return &Receipt{
		BookingID:      bookingID,
		Total:          quote.Total,
		EstimatedHours: quote.Hours,
		CorrelationID:  corrID,
	}, nil
}

func (s *Service) fail(log *zap.Logger, step, corrID string, err error) error {
	log.Error("commit step failed", zap.String("step", step), zap.Error(err))
	return &CommitError{Step: step, CorrelationID: corrID, Err: err}
}

// compensate undoes the rows written before a space/interval conflict.
// Best effort: anything it cannot remove is picked up by the reconcile
// sweep via the correlation id on the booking row.
func (s *Service) compensate(ctx context.Context, log *zap.Logger, bookingID, groupID int64) {
	if err := s.bookings.DeleteSelections(ctx, groupID); err != nil {
		log.Warn("compensation: delete selections failed", zap.Error(err))
	}
	if err := s.bookings.DeleteDetails(ctx, bookingID); err != nil {
		log.Warn("compensation: delete details failed", zap.Error(err))
	}
	if err := s.invoices.DeleteForBooking(ctx, bookingID); err != nil {
		log.Warn("compensation: delete invoice failed", zap.Error(err))
	}
	if err := s.bookings.DeleteServiceGroup(ctx, groupID); err != nil {
		log.Warn("compensation: delete service group failed", zap.Error(err))
	}
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		log.Warn("compensation: delete booking failed", zap.Error(err))
	}
}

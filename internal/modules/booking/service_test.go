package booking

import (
	"context"
	"testing"
	"time"

	"coworking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) MaxID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) MaxID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingRepository) CreateDetail(ctx context.Context, d *domain.BookingDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteDetails(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingRepository) MaxServiceGroupID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CreateServiceGroup(ctx context.Context, g *domain.BookingServiceGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteServiceGroup(ctx context.Context, groupID int64) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockBookingRepository) CreateServiceSelection(ctx context.Context, sel *domain.ServiceSelection) error {
	args := m.Called(ctx, sel)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteSelections(ctx context.Context, groupID int64) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteForBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type MockSpaceFreeChecker struct {
	mock.Mock
}

func (m *MockSpaceFreeChecker) IsSpaceFree(ctx context.Context, spaceID int64, checkin, checkout time.Time) (bool, error) {
	args := m.Called(ctx, spaceID, checkin, checkout)
	return args.Bool(0), args.Error(1)
}

func newTestService() (*Service, *MockCustomerRepository, *MockBookingRepository, *MockInvoiceRepository, *MockSpaceFreeChecker) {
	customers := new(MockCustomerRepository)
	bookings := new(MockBookingRepository)
	invoices := new(MockInvoiceRepository)
	checker := new(MockSpaceFreeChecker)
	svc := NewService(customers, bookings, invoices, checker, zap.NewNop())
	return svc, customers, bookings, invoices, checker
}

func fullDayDraft() *Draft {
	d := NewDraft()
	d.SetInterval(
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC),
	)
	d.AddSpace(SelectedSpace{SpaceID: 5, SpaceTypeID: 7, UnitPriceHourly: 30000})
	d.Customer = CustomerInfo{Name: "Nguyen Van A", Phone: "0900000000"}
	return d
}

func TestCommit_NewCustomerNoServices(t *testing.T) {
	svc, customers, bookings, invoices, checker := newTestService()
	d := fullDayDraft()

	customers.On("GetByPhone", mock.Anything, "0900000000").Return(nil, nil)
	customers.On("MaxID", mock.Anything).Return(int64(0), nil)
	var createdCustomer *domain.Customer
	customers.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		createdCustomer = args.Get(1).(*domain.Customer)
	}).Return(nil)

	bookings.On("MaxID", mock.Anything).Return(int64(41), nil)
	var createdBooking *domain.Booking
	bookings.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		createdBooking = args.Get(1).(*domain.Booking)
	}).Return(nil)

	bookings.On("MaxServiceGroupID", mock.Anything).Return(int64(7), nil)
	bookings.On("CreateServiceGroup", mock.Anything, mock.Anything).Return(nil)

	var createdInvoice *domain.Invoice
	invoices.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		createdInvoice = args.Get(1).(*domain.Invoice)
	}).Return(nil)

	checker.On("IsSpaceFree", mock.Anything, int64(5), d.Checkin, d.Checkout).Return(true, nil)
	bookings.On("CreateDetail", mock.Anything, &domain.BookingDetail{BookingID: 42, SpaceID: 5}).Return(nil)

	receipt, err := svc.Commit(context.Background(), d)

	require.NoError(t, err)
	assert.Equal(t, int64(42), receipt.BookingID)
	assert.Equal(t, 270000.0, receipt.Total)
	assert.Equal(t, 9.0, receipt.EstimatedHours)
	assert.NotEmpty(t, receipt.CorrelationID)

	require.NotNil(t, createdCustomer)
	assert.Equal(t, int64(1), createdCustomer.ID)
	assert.Equal(t, "Nguyen Van A", createdCustomer.Name)
	assert.Equal(t, domain.WalkInCustomerType, createdCustomer.CustomerTypeID)

	require.NotNil(t, createdBooking)
	assert.Equal(t, domain.StatusPendingCheckin, createdBooking.Status)
	assert.Equal(t, SelfServiceSource, createdBooking.CustomerSourceID)
	assert.Equal(t, receipt.CorrelationID, createdBooking.CorrelationID)

	require.NotNil(t, createdInvoice)
	assert.Equal(t, 270000.0, createdInvoice.Total)
	assert.Equal(t, int64(42), createdInvoice.BookingID)
	assert.Equal(t, int64(8), createdInvoice.BookingServiceID)

	// no services selected, so no selection rows
	bookings.AssertNotCalled(t, "CreateServiceSelection", mock.Anything, mock.Anything)
	bookings.AssertExpectations(t)
	customers.AssertExpectations(t)
	invoices.AssertExpectations(t)
}

func TestCommit_ExistingCustomerReused(t *testing.T) {
	svc, customers, bookings, invoices, checker := newTestService()
	d := fullDayDraft()
	d.Customer.Phone = "0900 000 000" // normalization strips the spaces

	customers.On("GetByPhone", mock.Anything, "0900000000").Return(&domain.Customer{ID: 17}, nil)

	bookings.On("MaxID", mock.Anything).Return(int64(0), nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.CustomerID == 17
	})).Return(nil)
	bookings.On("MaxServiceGroupID", mock.Anything).Return(int64(0), nil)
	bookings.On("CreateServiceGroup", mock.Anything, mock.Anything).Return(nil)
	invoices.On("Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.CustomerID == 17
	})).Return(nil)
	checker.On("IsSpaceFree", mock.Anything, int64(5), d.Checkin, d.Checkout).Return(true, nil)
	bookings.On("CreateDetail", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Commit(context.Background(), d)

	require.NoError(t, err)
	customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommit_WithServices(t *testing.T) {
	svc, customers, bookings, invoices, checker := newTestService()
	d := fullDayDraft()
	d.AddService(SelectedService{ServiceID: 3, UnitPrice: 20000}, 3)
	d.AddService(SelectedService{ServiceID: 4, UnitPrice: 2000}, 0) // pruned

	customers.On("GetByPhone", mock.Anything, mock.Anything).Return(&domain.Customer{ID: 1}, nil)
	bookings.On("MaxID", mock.Anything).Return(int64(0), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	bookings.On("MaxServiceGroupID", mock.Anything).Return(int64(0), nil)
	bookings.On("CreateServiceGroup", mock.Anything, mock.Anything).Return(nil)
	invoices.On("Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		// 9h * 30,000 + 3 * 20,000
		return inv.Total == 330000.0
	})).Return(nil)
	checker.On("IsSpaceFree", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	bookings.On("CreateDetail", mock.Anything, mock.Anything).Return(nil)
	bookings.On("CreateServiceSelection", mock.Anything, &domain.ServiceSelection{
		BookingServiceID: 1, ServiceID: 3, Quantity: 3,
	}).Return(nil)

	_, err := svc.Commit(context.Background(), d)

	require.NoError(t, err)
	bookings.AssertNumberOfCalls(t, "CreateServiceSelection", 1)
}

func TestCommit_Validation(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	checkin := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	cases := map[string]*Draft{
		"nil draft": nil,
		"no interval": func() *Draft {
			d := fullDayDraft()
			d.Checkin, d.Checkout = time.Time{}, time.Time{}
			return d
		}(),
		"inverted interval": func() *Draft {
			d := fullDayDraft()
			d.SetInterval(checkin.Add(time.Hour), checkin)
			return d
		}(),
		"no spaces": func() *Draft {
			d := fullDayDraft()
			d.RemoveSpace(5)
			return d
		}(),
		"blank name": func() *Draft {
			d := fullDayDraft()
			d.Customer.Name = "   "
			return d
		}(),
		"blank phone": func() *Draft {
			d := fullDayDraft()
			d.Customer.Phone = "n/a"
			return d
		}(),
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Commit(context.Background(), d)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCommit_SpaceTakenTriggersCompensation(t *testing.T) {
	svc, customers, bookings, invoices, checker := newTestService()
	d := fullDayDraft()

	customers.On("GetByPhone", mock.Anything, mock.Anything).Return(&domain.Customer{ID: 1}, nil)
	bookings.On("MaxID", mock.Anything).Return(int64(41), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	bookings.On("MaxServiceGroupID", mock.Anything).Return(int64(7), nil)
	bookings.On("CreateServiceGroup", mock.Anything, mock.Anything).Return(nil)
	invoices.On("Create", mock.Anything, mock.Anything).Return(nil)

	// another commit won the race for space 5
	checker.On("IsSpaceFree", mock.Anything, int64(5), d.Checkin, d.Checkout).Return(false, nil)

	bookings.On("DeleteSelections", mock.Anything, int64(8)).Return(nil)
	bookings.On("DeleteDetails", mock.Anything, int64(42)).Return(nil)
	invoices.On("DeleteForBooking", mock.Anything, int64(42)).Return(nil)
	bookings.On("DeleteServiceGroup", mock.Anything, int64(8)).Return(nil)
	bookings.On("Delete", mock.Anything, int64(42)).Return(nil)

	_, err := svc.Commit(context.Background(), d)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var commitErr *CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, "write-details", commitErr.Step)
	assert.NotEmpty(t, commitErr.CorrelationID)

	bookings.AssertCalled(t, "Delete", mock.Anything, int64(42))
	invoices.AssertCalled(t, "DeleteForBooking", mock.Anything, int64(42))
}

func TestCommit_DetailDuplicateKeyTreatedAsConflict(t *testing.T) {
	svc, customers, bookings, invoices, checker := newTestService()
	d := fullDayDraft()

	customers.On("GetByPhone", mock.Anything, mock.Anything).Return(&domain.Customer{ID: 1}, nil)
	bookings.On("MaxID", mock.Anything).Return(int64(0), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	bookings.On("MaxServiceGroupID", mock.Anything).Return(int64(0), nil)
	bookings.On("CreateServiceGroup", mock.Anything, mock.Anything).Return(nil)
	invoices.On("Create", mock.Anything, mock.Anything).Return(nil)
	checker.On("IsSpaceFree", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	// the store exclusion constraint fires even though the re-check passed
	bookings.On("CreateDetail", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	bookings.On("DeleteSelections", mock.Anything, mock.Anything).Return(nil)
	bookings.On("DeleteDetails", mock.Anything, mock.Anything).Return(nil)
	invoices.On("DeleteForBooking", mock.Anything, mock.Anything).Return(nil)
	bookings.On("DeleteServiceGroup", mock.Anything, mock.Anything).Return(nil)
	bookings.On("Delete", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Commit(context.Background(), d)

	assert.ErrorIs(t, err, ErrConflict)
}

func TestCommit_CustomerIDConflictRetriesThenFails(t *testing.T) {
	svc, customers, _, _, _ := newTestService()
	d := fullDayDraft()

	customers.On("GetByPhone", mock.Anything, mock.Anything).Return(nil, nil)
	customers.On("MaxID", mock.Anything).Return(int64(9), nil)
	customers.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Commit(context.Background(), d)

	assert.ErrorIs(t, err, ErrConflict)
	var commitErr *CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, "create-customer", commitErr.Step)
	customers.AssertNumberOfCalls(t, "Create", 2)
}

func TestCommit_InvoiceFailureNamesStep(t *testing.T) {
	svc, customers, bookings, invoices, _ := newTestService()
	d := fullDayDraft()

	customers.On("GetByPhone", mock.Anything, mock.Anything).Return(&domain.Customer{ID: 1}, nil)
	bookings.On("MaxID", mock.Anything).Return(int64(0), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	bookings.On("MaxServiceGroupID", mock.Anything).Return(int64(0), nil)
	bookings.On("CreateServiceGroup", mock.Anything, mock.Anything).Return(nil)
	invoices.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.Commit(context.Background(), d)

	var commitErr *CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, "create-invoice", commitErr.Step)
	assert.ErrorIs(t, err, assert.AnError)
}

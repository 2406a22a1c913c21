package repository

import (
	"context"
	"time"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               int64     `gorm:"column:booking_id;primaryKey"`
	Checkin          time.Time `gorm:"column:checkin;index"`
	Checkout         time.Time `gorm:"column:checkout;index"`
	CustomerID       int64     `gorm:"column:customer_id"`
	Status           string    `gorm:"column:booking_status"`
	CustomerSourceID int64     `gorm:"column:customer_source_id"`
	CorrelationID    string    `gorm:"column:correlation_id"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "booking" }

type bookingDetailModel struct {
	BookingID int64 `gorm:"column:booking_id;primaryKey;autoIncrement:false"`
	SpaceID   int64 `gorm:"column:space_id;primaryKey;autoIncrement:false"`
}

func (bookingDetailModel) TableName() string { return "booking_detail" }

type bookingServiceGroupModel struct {
	ID int64 `gorm:"column:booking_service_id;primaryKey"`
}

func (bookingServiceGroupModel) TableName() string { return "booking_service_group" }

type serviceSelectionModel struct {
	BookingServiceID int64 `gorm:"column:booking_service_id;primaryKey;autoIncrement:false"`
	ServiceID        int64 `gorm:"column:service_id;primaryKey;autoIncrement:false"`
	Quantity         int   `gorm:"column:service_quantity"`
}

func (serviceSelectionModel) TableName() string { return "service_selection" }

// toDomainBooking normalizes the stored status text through the closed
// enumeration; legacy rows carry free Vietnamese text.
func toDomainBooking(m bookingModel) domain.Booking {
	return domain.Booking{
		ID:               m.ID,
		Checkin:          m.Checkin,
		Checkout:         m.Checkout,
		CustomerID:       m.CustomerID,
		Status:           domain.ParseBookingStatus(m.Status),
		CustomerSourceID: m.CustomerSourceID,
		CorrelationID:    m.CorrelationID,
		CreatedAt:        m.CreatedAt,
	}
}

// GetOverlapping returns bookings whose interval overlaps [checkin, checkout),
// filtered at the store so callers never scan the whole table. Half-open
// semantics: rows that only abut the query interval are excluded.
func (r *BookingRepository) GetOverlapping(ctx context.Context, checkin, checkout time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("checkin < ? AND checkout > ?", checkout, checkin).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetDetailsForBookings(ctx context.Context, bookingIDs []int64) ([]domain.BookingDetail, error) {
	if len(bookingIDs) == 0 {
		return nil, nil
	}
	var rows []bookingDetailModel
	tx := r.db.WithContext(ctx).Where("booking_id IN ?", bookingIDs).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.BookingDetail, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.BookingDetail{BookingID: m.BookingID, SpaceID: m.SpaceID})
	}
	return out, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "booking_id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	b := toDomainBooking(m)
	return &b, nil
}

// MaxID returns the highest allocated booking identifier, 0 when none.
func (r *BookingRepository) MaxID(ctx context.Context) (int64, error) {
	var max int64
	tx := r.db.WithContext(ctx).Raw(`SELECT COALESCE(MAX(booking_id), 0) FROM booking`).Scan(&max)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return max, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	m := bookingModel{
		ID:               b.ID,
		Checkin:          b.Checkin,
		Checkout:         b.Checkout,
		CustomerID:       b.CustomerID,
		Status:           string(b.Status),
		CustomerSourceID: b.CustomerSourceID,
		CorrelationID:    b.CorrelationID,
		CreatedAt:        b.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	b.ID = m.ID
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, "booking_id = ?", bookingID)
	return tx.Error
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("booking_id = ?", bookingID).
		Update("booking_status", string(status))
	return tx.Error
}

func (r *BookingRepository) CreateDetail(ctx context.Context, d *domain.BookingDetail) error {
	m := bookingDetailModel{BookingID: d.BookingID, SpaceID: d.SpaceID}
	tx := r.db.WithContext(ctx).Create(&m)
	return tx.Error
}

func (r *BookingRepository) DeleteDetails(ctx context.Context, bookingID int64) error {
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Delete(&bookingDetailModel{})
	return tx.Error
}

// MaxServiceGroupID returns the highest allocated group identifier, 0 when none.
func (r *BookingRepository) MaxServiceGroupID(ctx context.Context) (int64, error) {
	var max int64
	tx := r.db.WithContext(ctx).Raw(`SELECT COALESCE(MAX(booking_service_id), 0) FROM booking_service_group`).Scan(&max)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return max, nil
}

func (r *BookingRepository) CreateServiceGroup(ctx context.Context, g *domain.BookingServiceGroup) error {
	m := bookingServiceGroupModel{ID: g.ID}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	g.ID = m.ID
	return nil
}

func (r *BookingRepository) DeleteServiceGroup(ctx context.Context, groupID int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingServiceGroupModel{}, "booking_service_id = ?", groupID)
	return tx.Error
}

func (r *BookingRepository) CreateServiceSelection(ctx context.Context, sel *domain.ServiceSelection) error {
	m := serviceSelectionModel{
		BookingServiceID: sel.BookingServiceID,
		ServiceID:        sel.ServiceID,
		Quantity:         sel.Quantity,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	return tx.Error
}

func (r *BookingRepository) DeleteSelections(ctx context.Context, groupID int64) error {
	tx := r.db.WithContext(ctx).Where("booking_service_id = ?", groupID).Delete(&serviceSelectionModel{})
	return tx.Error
}

// FindIncomplete returns pending-checkin bookings created before cutoff that
// are missing their invoice or their booking details, i.e. leftovers of a
// commit that died between steps. The reconcile sweep cancels them.
func (r *BookingRepository) FindIncomplete(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	q := `
SELECT b.* FROM booking b
WHERE b.created_at < ?
  AND b.booking_status = ?
  AND (
    NOT EXISTS (SELECT 1 FROM invoice i WHERE i.booking_id = b.booking_id)
    OR NOT EXISTS (SELECT 1 FROM booking_detail d WHERE d.booking_id = b.booking_id)
  )
`
	tx := r.db.WithContext(ctx).Raw(q, cutoff, string(domain.StatusPendingCheckin)).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

package repository

import (
	"context"
	"time"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

type invoiceModel struct {
	ID               int64     `gorm:"column:invoice_id;primaryKey;autoIncrement"`
	BookingID        int64     `gorm:"column:booking_id;index"`
	BookingServiceID int64     `gorm:"column:booking_service_id"`
	Total            float64   `gorm:"column:total"`
	PaymentMethod    *string   `gorm:"column:payment_method"`
	CustomerID       int64     `gorm:"column:customer_id"`
	CreateDate       time.Time `gorm:"column:create_date"`
}

func (invoiceModel) TableName() string { return "invoice" }

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	m := invoiceModel{
		BookingID:        inv.BookingID,
		BookingServiceID: inv.BookingServiceID,
		Total:            inv.Total,
		PaymentMethod:    inv.PaymentMethod,
		CustomerID:       inv.CustomerID,
		CreateDate:       inv.CreateDate,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	return tx.Error
}

func (r *InvoiceRepository) GetByBooking(ctx context.Context, bookingID int64) ([]domain.Invoice, error) {
	var rows []invoiceModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Invoice, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Invoice{
			BookingID:        m.BookingID,
			BookingServiceID: m.BookingServiceID,
			Total:            m.Total,
			PaymentMethod:    m.PaymentMethod,
			CustomerID:       m.CustomerID,
			CreateDate:       m.CreateDate,
		})
	}
	return out, nil
}

// DeleteForBooking is used by commit compensation and the reconcile sweep.
func (r *InvoiceRepository) DeleteForBooking(ctx context.Context, bookingID int64) error {
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Delete(&invoiceModel{})
	return tx.Error
}

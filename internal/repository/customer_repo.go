package repository

import (
	"context"
	"errors"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID             int64   `gorm:"column:customer_id;primaryKey"`
	Name           string  `gorm:"column:customer_name"`
	Phone          string  `gorm:"column:customer_phone;index"`
	Email          *string `gorm:"column:customer_email"`
	CustomerTypeID int64   `gorm:"column:customer_type_id"`
}

func (customerModel) TableName() string { return "customer" }

func toDomainCustomer(m customerModel) *domain.Customer {
	var email string
	if m.Email != nil {
		email = *m.Email
	}
	return &domain.Customer{
		ID:             m.ID,
		Name:           m.Name,
		Phone:          m.Phone,
		Email:          email,
		CustomerTypeID: m.CustomerTypeID,
	}
}

// GetByPhone looks a customer up by normalized phone digits; nil when absent.
func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).Where("customer_phone = ?", phone).Limit(1).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

// MaxID returns the highest allocated customer identifier, 0 when none.
func (r *CustomerRepository) MaxID(ctx context.Context) (int64, error) {
	var max int64
	tx := r.db.WithContext(ctx).Raw(`SELECT COALESCE(MAX(customer_id), 0) FROM customer`).Scan(&max)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return max, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	var email *string
	if c.Email != "" {
		v := c.Email
		email = &v
	}
	m := customerModel{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          email,
		CustomerTypeID: c.CustomerTypeID,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	return nil
}

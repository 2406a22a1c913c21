package repository

import (
	"context"
	"errors"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID        int64   `gorm:"column:service_id;primaryKey"`
	Name      string  `gorm:"column:service_name"`
	Unit      string  `gorm:"column:unit"`
	UnitPrice float64 `gorm:"column:unit_price"`
}

func (serviceModel) TableName() string { return "service" }

func toDomainService(m serviceModel) domain.Service {
	return domain.Service{ID: m.ID, Name: m.Name, Unit: m.Unit, UnitPrice: m.UnitPrice}
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	var rows []serviceModel
	tx := r.db.WithContext(ctx).Order("service_id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainService(m))
	}
	return out, nil
}

// GetByID returns nil when the service does not exist.
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, "service_id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	svc := toDomainService(m)
	return &svc, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := serviceModel{ID: s.ID, Name: s.Name, Unit: s.Unit, UnitPrice: s.UnitPrice}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	s.ID = m.ID
	return nil
}

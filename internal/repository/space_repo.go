package repository

import (
	"context"
	"errors"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

type SpaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

type spaceTypeModel struct {
	ID              int64   `gorm:"column:space_type_id;primaryKey"`
	Name            string  `gorm:"column:space_name"`
	UnitPriceHourly float64 `gorm:"column:unit_price_hourly"`
}

func (spaceTypeModel) TableName() string { return "space_type" }

type spaceModel struct {
	ID          int64 `gorm:"column:space_id;primaryKey"`
	SpaceTypeID int64 `gorm:"column:space_type_id;index"`
}

func (spaceModel) TableName() string { return "space" }

func toDomainSpaceType(m spaceTypeModel) domain.SpaceType {
	return domain.SpaceType{ID: m.ID, Name: m.Name, UnitPriceHourly: m.UnitPriceHourly}
}

func (r *SpaceRepository) GetTypes(ctx context.Context) ([]domain.SpaceType, error) {
	var rows []spaceTypeModel
	tx := r.db.WithContext(ctx).Order("space_type_id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.SpaceType, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSpaceType(m))
	}
	return out, nil
}

// GetTypeByID returns nil when the type does not exist.
func (r *SpaceRepository) GetTypeByID(ctx context.Context, id int64) (*domain.SpaceType, error) {
	var m spaceTypeModel
	tx := r.db.WithContext(ctx).First(&m, "space_type_id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	st := toDomainSpaceType(m)
	return &st, nil
}

// GetByID returns nil when the space does not exist.
func (r *SpaceRepository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	var m spaceModel
	tx := r.db.WithContext(ctx).First(&m, "space_id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &domain.Space{ID: m.ID, SpaceTypeID: m.SpaceTypeID}, nil
}

func (r *SpaceRepository) GetByType(ctx context.Context, spaceTypeID int64) ([]domain.Space, error) {
	var rows []spaceModel
	tx := r.db.WithContext(ctx).Where("space_type_id = ?", spaceTypeID).Order("space_id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Space, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Space{ID: m.ID, SpaceTypeID: m.SpaceTypeID})
	}
	return out, nil
}

func (r *SpaceRepository) CountByType(ctx context.Context, spaceTypeID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&spaceModel{}).Where("space_type_id = ?", spaceTypeID).Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// CreateType and Create exist for seeding and tests; reference data is not
// written by the reservation flow.
func (r *SpaceRepository) CreateType(ctx context.Context, st *domain.SpaceType) error {
	m := spaceTypeModel{ID: st.ID, Name: st.Name, UnitPriceHourly: st.UnitPriceHourly}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	st.ID = m.ID
	return nil
}

func (r *SpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	m := spaceModel{ID: s.ID, SpaceTypeID: s.SpaceTypeID}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	s.ID = m.ID
	return nil
}

package catalog

import (
	"context"

	"coworking/internal/domain"
)

type SpaceRepository interface {
	GetTypes(ctx context.Context) ([]domain.SpaceType, error)
	CountByType(ctx context.Context, spaceTypeID int64) (int64, error)
}

type ServiceRepository interface {
	GetAll(ctx context.Context) ([]domain.Service, error)
}

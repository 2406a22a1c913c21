package catalog

import "context"

// Service serves the immutable reference data the booking UI renders:
// space types with their rates and counts, and the metered services.
type Service struct {
	spaces   SpaceRepository
	services ServiceRepository
}

func NewService(spaces SpaceRepository, services ServiceRepository) *Service {
	return &Service{spaces: spaces, services: services}
}

func (s *Service) ListSpaceTypes(ctx context.Context) ([]SpaceTypeSummary, error) {
	types, err := s.spaces.GetTypes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SpaceTypeSummary, 0, len(types))
	for _, st := range types {
		cnt, err := s.spaces.CountByType(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, SpaceTypeSummary{
			SpaceTypeID:     st.ID,
			Name:            st.Name,
			UnitPriceHourly: st.UnitPriceHourly,
			TotalSpaces:     cnt,
		})
	}
	return out, nil
}

func (s *Service) ListServices(ctx context.Context) ([]ServiceSummary, error) {
	services, err := s.services.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ServiceSummary, 0, len(services))
	for _, sv := range services {
		out = append(out, ServiceSummary{
			ServiceID: sv.ID,
			Name:      sv.Name,
			Unit:      sv.Unit,
			UnitPrice: sv.UnitPrice,
		})
	}
	return out, nil
}

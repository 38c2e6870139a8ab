package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/delicias-da-thai/storefront/internal/domains/settings/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/settings/ports"
)

// Service orchestrates store configuration use cases. The accepting-orders
// answer is never cached: every call re-reads the calendar and the manual flag
// so a toggle takes effect on the very next request.
type Service struct {
	settings ports.SettingsRepository
	zones    ports.ZoneRepository
	newID    func() string
}

func NewService(settings ports.SettingsRepository, zones ports.ZoneRepository) *Service {
	return &Service{settings: settings, zones: zones, newID: uuid.NewString}
}

func (s *Service) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	return s.settings.Load(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, input ports.SettingsInput) (*domain.StoreSettings, error) {
	settings, err := domain.NewStoreSettings(input.DeliveryEnabled, input.Hours)
	if err != nil {
		return nil, mapError(err)
	}
	settings.LogoURL = input.LogoURL
	settings.Address = input.Address
	return s.settings.Save(ctx, settings)
}

func (s *Service) ManualOpen(ctx context.Context) (bool, error) {
	return s.settings.ManualOpen(ctx)
}

func (s *Service) SetManualOpen(ctx context.Context, open bool) error {
	return s.settings.SetManualOpen(ctx, open)
}

// IsAcceptingOrders evaluates the schedule against the manual flag at the
// given instant.
func (s *Service) IsAcceptingOrders(ctx context.Context, now time.Time) (bool, error) {
	manual, err := s.settings.ManualOpen(ctx)
	if err != nil {
		return false, err
	}
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return false, err
	}
	return domain.IsOpenAt(settings.Hours, manual, now), nil
}

func (s *Service) DeliveryEnabled(ctx context.Context) (bool, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return false, err
	}
	return settings.DeliveryEnabled, nil
}

func (s *Service) CreateZone(ctx context.Context, input ports.ZoneInput) (*domain.DeliveryZone, error) {
	zone, err := domain.NewDeliveryZone(s.newID(), input.Neighborhood, input.Fee)
	if err != nil {
		return nil, mapError(err)
	}
	return s.zones.Save(ctx, zone)
}

func (s *Service) UpdateZone(ctx context.Context, id string, input ports.ZoneInput) (*domain.DeliveryZone, error) {
	zone, err := s.zones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := zone.Rename(input.Neighborhood); err != nil {
		return nil, mapError(err)
	}
	if err := zone.SetFee(input.Fee); err != nil {
		return nil, mapError(err)
	}
	return s.zones.Save(ctx, zone)
}

func (s *Service) DeleteZone(ctx context.Context, id string) error {
	return s.zones.Delete(ctx, id)
}

func (s *Service) GetZone(ctx context.Context, id string) (*domain.DeliveryZone, error) {
	return s.zones.GetByID(ctx, id)
}

func (s *Service) ListZones(ctx context.Context) ([]*domain.DeliveryZone, error) {
	return s.zones.List(ctx)
}

var _ ports.Service = (*Service)(nil)

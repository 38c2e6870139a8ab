package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/delicias-da-thai/storefront/internal/domains/settings/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/settings/ports"
)

var (
	_ ports.SettingsRepository = (*SettingsRepository)(nil)
	_ ports.ZoneRepository     = (*ZoneRepository)(nil)
)

// SettingsRepository is an in-memory store configuration adapter. The store
// starts closed with delivery enabled and an all-closed calendar.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.StoreSettings
	manual   bool
}

func NewSettingsRepository() *SettingsRepository {
	settings, _ := domain.NewStoreSettings(true, nil)
	return &SettingsRepository{settings: settings}
}

func (r *SettingsRepository) Load(_ context.Context) (*domain.StoreSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := *r.settings
	clone.Hours = append([]domain.WeekdayHours{}, r.settings.Hours...)
	return &clone, nil
}

func (r *SettingsRepository) Save(_ context.Context, settings *domain.StoreSettings) (*domain.StoreSettings, error) {
	if settings == nil {
		return nil, errors.New("settings is nil")
	}
	clone := *settings
	clone.Hours = append([]domain.WeekdayHours{}, settings.Hours...)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = &clone
	out := clone
	out.Hours = append([]domain.WeekdayHours{}, clone.Hours...)
	return &out, nil
}

func (r *SettingsRepository) ManualOpen(_ context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.manual, nil
}

func (r *SettingsRepository) SetManualOpen(_ context.Context, open bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.manual = open
	return nil
}

// ZoneRepository is an in-memory delivery zone adapter.
type ZoneRepository struct {
	mu    sync.RWMutex
	zones map[string]*domain.DeliveryZone
}

func NewZoneRepository() *ZoneRepository {
	return &ZoneRepository{zones: map[string]*domain.DeliveryZone{}}
}

func (r *ZoneRepository) Save(_ context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error) {
	if zone == nil {
		return nil, errors.New("zone is nil")
	}
	clone := *zone
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zones[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *ZoneRepository) GetByID(_ context.Context, id string) (*domain.DeliveryZone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	zone, ok := r.zones[id]
	if !ok {
		return nil, ports.ErrZoneNotFound
	}
	clone := *zone
	return &clone, nil
}

func (r *ZoneRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.zones[id]; !ok {
		return ports.ErrZoneNotFound
	}
	delete(r.zones, id)
	return nil
}

func (r *ZoneRepository) List(_ context.Context) ([]*domain.DeliveryZone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.DeliveryZone, 0, len(r.zones))
	for _, zone := range r.zones {
		clone := *zone
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Neighborhood < list[j].Neighborhood })
	return list, nil
}

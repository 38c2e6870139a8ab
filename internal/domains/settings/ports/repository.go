package ports

import (
	"context"
	"errors"

	"github.com/delicias-da-thai/storefront/internal/domains/settings/domain"
)

var (
	ErrZoneNotFound = errors.New("delivery zone not found")
)

// SettingsRepository holds the single store configuration row plus the manual
// open flag. Load returns defaults when nothing was saved yet.
type SettingsRepository interface {
	Load(ctx context.Context) (*domain.StoreSettings, error)
	Save(ctx context.Context, settings *domain.StoreSettings) (*domain.StoreSettings, error)
	ManualOpen(ctx context.Context) (bool, error)
	SetManualOpen(ctx context.Context, open bool) error
}

// ZoneRepository persists delivery zones. List returns zones sorted by
// neighborhood.
type ZoneRepository interface {
	Save(ctx context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error)
	GetByID(ctx context.Context, id string) (*domain.DeliveryZone, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.DeliveryZone, error)
}

package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/delicias-da-thai/storefront/internal/domains/settings/domain"
)

// SettingsInput carries the operator-entered store configuration.
type SettingsInput struct {
	DeliveryEnabled bool
	Hours           []domain.WeekdayHours
	LogoURL         string
	Address         string
}

// ZoneInput carries the operator-entered delivery zone fields.
type ZoneInput struct {
	Neighborhood string
	Fee          decimal.Decimal
}

// Service exposes store configuration use cases. IsAcceptingOrders and
// DeliveryEnabled are the read paths the ordering context leans on.
type Service interface {
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)
	UpdateSettings(ctx context.Context, input SettingsInput) (*domain.StoreSettings, error)
	ManualOpen(ctx context.Context) (bool, error)
	SetManualOpen(ctx context.Context, open bool) error
	IsAcceptingOrders(ctx context.Context, now time.Time) (bool, error)
	DeliveryEnabled(ctx context.Context) (bool, error)

	CreateZone(ctx context.Context, input ZoneInput) (*domain.DeliveryZone, error)
	UpdateZone(ctx context.Context, id string, input ZoneInput) (*domain.DeliveryZone, error)
	DeleteZone(ctx context.Context, id string) error
	GetZone(ctx context.Context, id string) (*domain.DeliveryZone, error)
	ListZones(ctx context.Context) ([]*domain.DeliveryZone, error)
}

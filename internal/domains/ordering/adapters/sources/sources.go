package sources

import (
	"context"
	"errors"
	"time"

	catalogports "github.com/delicias-da-thai/storefront/internal/domains/catalog/ports"
	orderingdomain "github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	orderingports "github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
	settingsports "github.com/delicias-da-thai/storefront/internal/domains/settings/ports"
)

var (
	_ orderingports.CatalogSource = (*CatalogSource)(nil)
	_ orderingports.ZoneSource    = (*ZoneSource)(nil)
	_ orderingports.StoreGate     = (*StoreGate)(nil)
)

// CatalogSource adapts the catalog service into read-only item snapshots for
// the ordering context.
type CatalogSource struct {
	catalog catalogports.Service
}

func NewCatalogSource(catalog catalogports.Service) *CatalogSource {
	return &CatalogSource{catalog: catalog}
}

func (s *CatalogSource) ItemByID(ctx context.Context, id string) (*orderingdomain.ItemSnapshot, error) {
	product, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return nil, orderingports.ErrItemNotFound
		}
		return nil, err
	}
	return &orderingdomain.ItemSnapshot{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Category:  orderingdomain.Category(product.Category),
		Available: product.Available,
	}, nil
}

// ZoneSource adapts the settings service into zone snapshots resolved at
// selection time.
type ZoneSource struct {
	settings settingsports.Service
}

func NewZoneSource(settings settingsports.Service) *ZoneSource {
	return &ZoneSource{settings: settings}
}

func (s *ZoneSource) ZoneByID(ctx context.Context, id string) (*orderingports.ZoneSnapshot, error) {
	zone, err := s.settings.GetZone(ctx, id)
	if err != nil {
		if errors.Is(err, settingsports.ErrZoneNotFound) {
			return nil, orderingports.ErrZoneNotFound
		}
		return nil, err
	}
	return &orderingports.ZoneSnapshot{ID: zone.ID, Name: zone.Neighborhood, Fee: zone.Fee}, nil
}

// StoreGate adapts the settings service into the two store-wide answers the
// cart depends on.
type StoreGate struct {
	settings settingsports.Service
}

func NewStoreGate(settings settingsports.Service) *StoreGate {
	return &StoreGate{settings: settings}
}

func (g *StoreGate) AcceptingOrders(ctx context.Context, now time.Time) (bool, error) {
	return g.settings.IsAcceptingOrders(ctx, now)
}

func (g *StoreGate) DeliveryEnabled(ctx context.Context) (bool, error) {
	return g.settings.DeliveryEnabled(ctx)
}

package ports

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
)

var (
	ErrItemNotFound = errors.New("catalog item not found")
	ErrZoneNotFound = errors.New("delivery zone not found")
)

// CatalogSource hands the ordering context read-only item snapshots. The
// catalog is refreshed externally; the cart only ever copies current state.
type CatalogSource interface {
	ItemByID(ctx context.Context, id string) (*domain.ItemSnapshot, error)
}

// ZoneSnapshot is the slice of a delivery zone the cart needs.
type ZoneSnapshot struct {
	ID   string
	Name string
	Fee  decimal.Decimal
}

// ZoneSource resolves delivery zones at selection time.
type ZoneSource interface {
	ZoneByID(ctx context.Context, id string) (*ZoneSnapshot, error)
}

// StoreGate answers the two store-wide questions the cart depends on. Both
// are re-read on every relevant operation rather than cached: configuration
// updates arrive by push with no ordering guarantee relative to user actions.
type StoreGate interface {
	AcceptingOrders(ctx context.Context, now time.Time) (bool, error)
	DeliveryEnabled(ctx context.Context) (bool, error)
}

// Clock supplies the current instant, injected so validation is testable.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

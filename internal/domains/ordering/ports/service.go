package ports

import (
	"context"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
)

// Submission is the outcome of a successful checkout: the serialized message,
// the prefilled messaging link handed to the front end, and the archived
// record. Archived is false when the best-effort archive step failed; the
// submission itself still succeeded.
type Submission struct {
	Message  string
	Link     string
	Order    *domain.SubmittedOrder
	Archived bool
}

// Service exposes the order composition use cases to adapters. All operations
// are synchronous; mutations act on the session's cart only.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error)
	SetFulfillmentMode(ctx context.Context, sessionID string, mode domain.FulfillmentMode) (*domain.Cart, error)
	SelectZone(ctx context.Context, sessionID, zoneID string) (*domain.Cart, error)
	UpdateCustomer(ctx context.Context, sessionID string, patch domain.CustomerPatch) (*domain.Cart, error)
	Reset(ctx context.Context, sessionID string) error
	IsAcceptingOrders(ctx context.Context) (bool, error)
	Checkout(ctx context.Context, sessionID string) (*Submission, error)
}

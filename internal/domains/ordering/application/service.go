package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
)

// Service orchestrates the order composition use cases. Store-wide state
// (delivery flag, opening decision) is re-read from the gate on every
// operation instead of cached, so late-arriving configuration pushes can
// never leave a cart acting on stale rules.
type Service struct {
	carts     ports.CartStore
	catalog   ports.CatalogSource
	zones     ports.ZoneSource
	gate      ports.StoreGate
	clock     ports.Clock
	composer  domain.MessageComposer
	workflows ports.WorkflowOrchestrator
	newID     func() string
}

type Option func(*Service)

// WithClock overrides the wall clock, mainly for tests.
func WithClock(clock ports.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithComposer sets the outbound message composer.
func WithComposer(composer domain.MessageComposer) Option {
	return func(s *Service) { s.composer = composer }
}

// WithOrchestrator wires the post-checkout archive step.
func WithOrchestrator(workflows ports.WorkflowOrchestrator) Option {
	return func(s *Service) { s.workflows = workflows }
}

// NewService wires the ordering service with its collaborators.
func NewService(carts ports.CartStore, catalog ports.CatalogSource, zones ports.ZoneSource, gate ports.StoreGate, opts ...Option) *Service {
	s := &Service{
		carts:   carts,
		catalog: catalog,
		zones:   zones,
		gate:    gate,
		clock:   ports.ClockFunc(time.Now),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// GetCart loads the session's cart, refreshing the store-wide delivery flag.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.loadCart(ctx, sessionID)
}

// AddItem resolves the item's current snapshot and increments its line.
func (s *Service) AddItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	item, err := s.catalog.ItemByID(ctx, itemID)
	if err != nil {
		return nil, mapError(err)
	}
	cart.AddItem(*item)
	return cart, s.carts.Save(ctx, sessionID, cart)
}

// SetQuantity forces a line to an explicit quantity; zero removes the line.
func (s *Service) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.Cart, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	item, err := s.catalog.ItemByID(ctx, itemID)
	if err != nil {
		return nil, mapError(err)
	}
	cart.SetQuantity(*item, quantity)
	return cart, s.carts.Save(ctx, sessionID, cart)
}

// RemoveItem drops a line; unknown ids are a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.Remove(itemID)
	return cart, s.carts.Save(ctx, sessionID, cart)
}

// SetFulfillmentMode switches pickup/delivery under the current store flag.
func (s *Service) SetFulfillmentMode(ctx context.Context, sessionID string, mode domain.FulfillmentMode) (*domain.Cart, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.SetFulfillmentMode(mode)
	return cart, s.carts.Save(ctx, sessionID, cart)
}

// SelectZone copies the zone's current fee into the cart as a snapshot.
func (s *Service) SelectZone(ctx context.Context, sessionID, zoneID string) (*domain.Cart, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if zoneID == "" {
		cart.ClearZone()
		return cart, s.carts.Save(ctx, sessionID, cart)
	}
	zone, err := s.zones.ZoneByID(ctx, zoneID)
	if err != nil {
		return nil, mapError(err)
	}
	cart.SelectZone(zone.ID, zone.Name, zone.Fee)
	return cart, s.carts.Save(ctx, sessionID, cart)
}

// UpdateCustomer shallow-merges customer fields; validation happens at checkout.
func (s *Service) UpdateCustomer(ctx context.Context, sessionID string, patch domain.CustomerPatch) (*domain.Cart, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.UpdateCustomer(patch)
	return cart, s.carts.Save(ctx, sessionID, cart)
}

// Reset discards the session's cart.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	return s.carts.Delete(ctx, sessionID)
}

// IsAcceptingOrders re-derives the opening decision for the current instant.
func (s *Service) IsAcceptingOrders(ctx context.Context) (bool, error) {
	return s.gate.AcceptingOrders(ctx, s.clock.Now())
}

// Checkout validates the cart against the store state read at this instant,
// composes the outbound message, archives the order best-effort, and resets
// the aggregate. A validation failure leaves the cart untouched.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*ports.Submission, error) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	now := s.clock.Now()
	accepting, err := s.gate.AcceptingOrders(ctx, now)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateCheckout(cart, accepting, now); err != nil {
		return nil, err
	}

	message := s.composer.Compose(cart)
	order := domain.NewSubmittedOrder(s.newID(), cart, message, now)
	submission := &ports.Submission{
		Message: message,
		Link:    s.composer.WhatsAppLink(message),
		Order:   order,
	}
	if s.workflows != nil {
		// The customer already has the message; archive failures must not
		// undo the checkout. The orchestrator logs its own errors.
		submission.Archived = s.workflows.ArchiveOrder(ctx, order) == nil
	}

	cart.Clear()
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return submission, nil
}

// loadCart fetches the session's cart and applies the store-wide delivery
// flag before any operation sees it.
func (s *Service) loadCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	enabled, err := s.gate.DeliveryEnabled(ctx)
	if err != nil {
		return nil, err
	}
	cart.SetDeliveryEnabled(enabled)
	return cart, nil
}

var _ ports.Service = (*Service)(nil)

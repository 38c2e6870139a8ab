package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
)

var _ ports.CartStore = (*CartStore)(nil)

// CartStore keeps one cart per customer session in memory. Carts are not
// cloned on the way out: the application service is the aggregate's single
// writer and saves back after every mutation.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[string]*domain.Cart{}}
}

// Get returns the session's cart, creating an empty one on first touch.
func (s *CartStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, errors.New("session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = domain.NewCart()
		s.carts[sessionID] = cart
	}
	return cart, nil
}

func (s *CartStore) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}
	if cart == nil {
		return errors.New("cart is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = cart
	return nil
}

func (s *CartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

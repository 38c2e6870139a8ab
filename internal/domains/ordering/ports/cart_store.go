package ports

import (
	"context"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
)

// CartStore keeps one cart per customer session. A session that has no cart
// yet gets a fresh empty one; the aggregate has exactly one writer.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
)

// ArchiveRepository keeps submitted orders in process memory. Used when no
// Postgres DSN is configured; the archive does not survive restarts.
type ArchiveRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.SubmittedOrder
}

var _ ports.ArchiveRepository = (*ArchiveRepository)(nil)

func NewArchiveRepository() *ArchiveRepository {
	return &ArchiveRepository{orders: make(map[string]*domain.SubmittedOrder)}
}

// Save stores the order once. Replays of the same order ID keep the original
// record, matching the insert-only Postgres adapter.
func (r *ArchiveRepository) Save(_ context.Context, order *domain.SubmittedOrder) (*domain.SubmittedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.orders[order.ID]; ok {
		return cloneOrder(existing), nil
	}
	r.orders[order.ID] = cloneOrder(order)
	return cloneOrder(order), nil
}

func (r *ArchiveRepository) GetByID(_ context.Context, id string) (*domain.SubmittedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

// List returns archived orders newest first.
func (r *ArchiveRepository) List(_ context.Context) ([]*domain.SubmittedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.SubmittedOrder, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, cloneOrder(order))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func cloneOrder(order *domain.SubmittedOrder) *domain.SubmittedOrder {
	clone := *order
	if order.ScheduledAt != nil {
		at := *order.ScheduledAt
		clone.ScheduledAt = &at
	}
	return &clone
}

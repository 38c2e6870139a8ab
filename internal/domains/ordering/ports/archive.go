package ports

import (
	"context"
	"errors"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
)

var ErrOrderNotFound = errors.New("submitted order not found")

// ArchiveRepository persists submitted orders for the operator panel.
type ArchiveRepository interface {
	Save(ctx context.Context, order *domain.SubmittedOrder) (*domain.SubmittedOrder, error)
	GetByID(ctx context.Context, id string) (*domain.SubmittedOrder, error)
	List(ctx context.Context) ([]*domain.SubmittedOrder, error)
}

// WorkflowOrchestrator runs the post-checkout archive step, either inline or
// through a durable workflow engine. Archival is best-effort: checkout has
// already succeeded by the time it runs.
type WorkflowOrchestrator interface {
	ArchiveOrder(ctx context.Context, order *domain.SubmittedOrder) error
}

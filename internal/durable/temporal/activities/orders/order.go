package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	orderingdomain "github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	orderingports "github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
)

const (
	// ArchiveOrderActivityName persists a submitted order in the archive.
	ArchiveOrderActivityName = "orders.activities.ArchiveOrder"
)

// Activities groups activities that operate on the order archive.
type Activities struct {
	archive orderingports.ArchiveRepository
}

// NewActivities wires the archive repository into the Temporal activities bundle.
func NewActivities(archive orderingports.ArchiveRepository) *Activities {
	return &Activities{archive: archive}
}

// ArchiveOrder stores a submitted order. The write is idempotent on the order
// id, so retried attempts are safe.
func (a *Activities) ArchiveOrder(ctx context.Context, order *orderingdomain.SubmittedOrder) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.archive == nil {
		logger.Error("order archive activity not initialized")
		return errors.New("order archive activity not initialized")
	}
	if order == nil {
		return errors.New("order is nil")
	}
	logger.Info("ArchiveOrder activity started", "orderId", order.ID)
	if _, err := a.archive.Save(ctx, order); err != nil {
		logger.Error("ArchiveOrder activity failed", "orderId", order.ID, "error", err)
		return err
	}
	logger.Info("ArchiveOrder activity completed", "orderId", order.ID)
	return nil
}

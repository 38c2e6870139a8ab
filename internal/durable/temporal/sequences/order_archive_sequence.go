package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderingdomain "github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	orderactivities "github.com/delicias-da-thai/storefront/internal/durable/temporal/activities/orders"
)

// RunOrderArchiveSequence executes the ordered set of activities needed to
// archive a submitted order.
func RunOrderArchiveSequence(ctx workflow.Context, order *orderingdomain.SubmittedOrder) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("order archive sequence started", "orderId", order.ID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	if err := workflow.ExecuteActivity(ctx, orderactivities.ArchiveOrderActivityName, order).Get(ctx, nil); err != nil {
		logger.Error("order archive sequence failed", "orderId", order.ID, "error", err)
		return err
	}
	logger.Info("order archive sequence completed", "orderId", order.ID)
	return nil
}

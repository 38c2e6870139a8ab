package orders

import (
	"go.temporal.io/sdk/workflow"

	orderingdomain "github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/durable/temporal/sequences"
)

const (
	// OrderSubmissionWorkflowName is the public identifier for registering the workflow.
	OrderSubmissionWorkflowName = "orders.workflows.Submission"
	// OrderSubmissionTaskQueue is the queue consumed by the worker processing order workflows.
	OrderSubmissionTaskQueue = "ORDER_SUBMISSION"
)

// OrderSubmissionWorkflowInput captures the payload required to archive a
// submitted order.
type OrderSubmissionWorkflowInput struct {
	Order   *orderingdomain.SubmittedOrder
	TraceID string
}

// OrderSubmissionWorkflow orchestrates the activities that follow a checkout.
func OrderSubmissionWorkflow(ctx workflow.Context, input OrderSubmissionWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	if input.Order == nil {
		logger.Error("OrderSubmissionWorkflow received no order", withTraceID(input.TraceID)...)
		return nil
	}
	logger.Info("OrderSubmissionWorkflow started", withTraceID(input.TraceID, "orderId", input.Order.ID)...)
	if err := sequences.RunOrderArchiveSequence(ctx, input.Order); err != nil {
		logger.Error("OrderSubmissionWorkflow failed", withTraceID(input.TraceID, "orderId", input.Order.ID, "error", err)...)
		return err
	}
	logger.Info("OrderSubmissionWorkflow completed", withTraceID(input.TraceID, "orderId", input.Order.ID)...)
	return nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}

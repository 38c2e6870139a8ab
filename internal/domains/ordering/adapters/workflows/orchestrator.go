package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
	orderworkflows "github.com/delicias-da-thai/storefront/internal/durable/temporal/workflows/orders"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalOrderWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineOrderWorkflows)(nil)
)

// TemporalOrderWorkflows starts order workflows on a Temporal cluster.
type TemporalOrderWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalOrderWorkflows wires a Temporal client into the orchestrator.
func NewTemporalOrderWorkflows(c client.Client) *TemporalOrderWorkflows {
	return &TemporalOrderWorkflows{client: c, taskQueue: orderworkflows.OrderSubmissionTaskQueue}
}

// ArchiveOrder starts the Temporal workflow that archives a submitted order.
// The workflow id is derived from the order id, so a resubmission of the same
// order joins the running workflow instead of starting a second one.
func (o *TemporalOrderWorkflows) ArchiveOrder(ctx context.Context, order *domain.SubmittedOrder) error {
	if o == nil || o.client == nil {
		return errors.New("temporal order workflows not configured")
	}
	if order == nil {
		return errors.New("order is nil")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("order-submission-%s", order.ID),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.OrderSubmissionWorkflow,
		orderworkflows.OrderSubmissionWorkflowInput{Order: order, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			existingRun := o.client.GetWorkflow(ctx, options.ID, alreadyStarted.RunId)
			return existingRun.Get(ctx, nil)
		}
		return err
	}
	return run.Get(ctx, nil)
}

// InlineOrderWorkflows archives directly without Temporal, useful for tests
// or dev fallbacks.
type InlineOrderWorkflows struct {
	archive ports.ArchiveRepository
}

// NewInlineOrderWorkflows wraps the archive repository for synchronous execution.
func NewInlineOrderWorkflows(archive ports.ArchiveRepository) *InlineOrderWorkflows {
	return &InlineOrderWorkflows{archive: archive}
}

// ArchiveOrder persists the order without durable orchestration.
func (o *InlineOrderWorkflows) ArchiveOrder(ctx context.Context, order *domain.SubmittedOrder) error {
	if o == nil || o.archive == nil {
		return errors.New("inline order workflows not configured")
	}
	_, err := o.archive.Save(ctx, order)
	return err
}

func workflowTraceComponent(ctx context.Context) string {
	traceComponent := workflowTraceID(ctx)
	if traceComponent != "" {
		return traceComponent
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}

package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderingapp "github.com/delicias-da-thai/storefront/internal/domains/ordering/application"
	orderingdomain "github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	orderingports "github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
)

const tracerName = "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/observability/service"

// Service decorates the ordering service with tracing, logging, and metrics.
type Service struct {
	inner   orderingports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core ordering service.
func New(inner orderingports.Service, opts ...Option) orderingports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) GetCart(ctx context.Context, sessionID string) (*orderingdomain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.GetCart")
	defer span.End()

	cart, err := s.inner.GetCart(ctx, sessionID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load cart")
	}
	return cart, nil
}

func (s *Service) AddItem(ctx context.Context, sessionID, itemID string) (*orderingdomain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.AddItem",
		trace.WithAttributes(attribute.String("item.id", itemID)))
	defer span.End()

	cart, err := s.inner.AddItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add item", slog.String("item.id", itemID))
	}
	s.metrics.recordItemAdded(ctx)
	s.logInfo(ctx, "item added to cart", slog.String("item.id", itemID), slog.Int("cart.lines", len(cart.Lines())))
	return cart, nil
}

func (s *Service) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*orderingdomain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.SetQuantity",
		trace.WithAttributes(attribute.String("item.id", itemID), attribute.Int("quantity", quantity)))
	defer span.End()

	cart, err := s.inner.SetQuantity(ctx, sessionID, itemID, quantity)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to set quantity", slog.String("item.id", itemID))
	}
	return cart, nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*orderingdomain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.RemoveItem",
		trace.WithAttributes(attribute.String("item.id", itemID)))
	defer span.End()

	cart, err := s.inner.RemoveItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to remove item", slog.String("item.id", itemID))
	}
	return cart, nil
}

func (s *Service) SetFulfillmentMode(ctx context.Context, sessionID string, mode orderingdomain.FulfillmentMode) (*orderingdomain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.SetFulfillmentMode",
		trace.WithAttributes(attribute.String("cart.mode", string(mode))))
	defer span.End()

	cart, err := s.inner.SetFulfillmentMode(ctx, sessionID, mode)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to set fulfillment mode", slog.String("cart.mode", string(mode)))
	}
	return cart, nil
}

func (s *Service) SelectZone(ctx context.Context, sessionID, zoneID string) (*orderingdomain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.SelectZone",
		trace.WithAttributes(attribute.String("zone.id", zoneID)))
	defer span.End()

	cart, err := s.inner.SelectZone(ctx, sessionID, zoneID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to select zone", slog.String("zone.id", zoneID))
	}
	return cart, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, sessionID string, patch orderingdomain.CustomerPatch) (*orderingdomain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.UpdateCustomer")
	defer span.End()

	cart, err := s.inner.UpdateCustomer(ctx, sessionID, patch)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update customer details")
	}
	return cart, nil
}

func (s *Service) Reset(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "OrderingService.Reset")
	defer span.End()

	if err := s.inner.Reset(ctx, sessionID); err != nil {
		return s.handleError(ctx, span, err, "failed to reset cart")
	}
	return nil
}

func (s *Service) IsAcceptingOrders(ctx context.Context) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.IsAcceptingOrders")
	defer span.End()

	open, err := s.inner.IsAcceptingOrders(ctx)
	if err != nil {
		return false, s.handleError(ctx, span, err, "failed to evaluate store status")
	}
	span.SetAttributes(attribute.Bool("store.accepting_orders", open))
	return open, nil
}

func (s *Service) Checkout(ctx context.Context, sessionID string) (*orderingports.Submission, error) {
	ctx, span := s.tracer.Start(ctx, "OrderingService.Checkout")
	defer span.End()

	s.logInfo(ctx, "checkout started")
	submission, err := s.inner.Checkout(ctx, sessionID)
	if err != nil {
		if code := orderingapp.FailureCode(err); code != "" {
			span.SetAttributes(attribute.String("checkout.failure", code))
			s.metrics.recordCheckoutRejected(ctx, code)
			s.logInfo(ctx, "checkout rejected", slog.String("reason", code))
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "checkout failed")
	}
	s.metrics.recordCheckoutCompleted(ctx, submission.Order.Mode)
	s.logInfo(ctx, "checkout completed",
		slog.String("order.id", submission.Order.ID),
		slog.String("order.mode", string(submission.Order.Mode)),
		slog.Bool("order.archived", submission.Archived))
	return submission, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	itemsAdded         metric.Int64Counter
	checkoutsCompleted metric.Int64Counter
	checkoutsRejected  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsAdded, _ := m.Int64Counter("ordering.service.items_added", metric.WithDescription("Number of items added to carts"))
	checkoutsCompleted, _ := m.Int64Counter("ordering.service.checkouts_completed", metric.WithDescription("Number of successful checkouts"))
	checkoutsRejected, _ := m.Int64Counter("ordering.service.checkouts_rejected", metric.WithDescription("Number of checkouts rejected by validation"))
	return serviceMetrics{itemsAdded: itemsAdded, checkoutsCompleted: checkoutsCompleted, checkoutsRejected: checkoutsRejected}
}

func (m serviceMetrics) recordItemAdded(ctx context.Context) {
	if m.itemsAdded != nil {
		m.itemsAdded.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordCheckoutCompleted(ctx context.Context, mode orderingdomain.FulfillmentMode) {
	if m.checkoutsCompleted != nil {
		m.checkoutsCompleted.Add(ctx, 1, metric.WithAttributes(attribute.String("order.mode", string(mode))))
	}
}

func (m serviceMetrics) recordCheckoutRejected(ctx context.Context, reason string) {
	if m.checkoutsRejected != nil {
		m.checkoutsRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("checkout.failure", reason)))
	}
}

var _ orderingports.Service = (*Service)(nil)

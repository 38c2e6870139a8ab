package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
)

type fakeCartStore struct {
	carts map[string]*domain.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[string]*domain.Cart{}}
}

func (f *fakeCartStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	if cart, ok := f.carts[sessionID]; ok {
		return cart, nil
	}
	cart := domain.NewCart()
	f.carts[sessionID] = cart
	return cart, nil
}

func (f *fakeCartStore) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	f.carts[sessionID] = cart
	return nil
}

func (f *fakeCartStore) Delete(_ context.Context, sessionID string) error {
	delete(f.carts, sessionID)
	return nil
}

type fakeCatalog struct {
	items map[string]domain.ItemSnapshot
}

func (f *fakeCatalog) ItemByID(_ context.Context, id string) (*domain.ItemSnapshot, error) {
	if item, ok := f.items[id]; ok {
		return &item, nil
	}
	return nil, ports.ErrItemNotFound
}

type fakeZones struct {
	zones map[string]ports.ZoneSnapshot
}

func (f *fakeZones) ZoneByID(_ context.Context, id string) (*ports.ZoneSnapshot, error) {
	if zone, ok := f.zones[id]; ok {
		return &zone, nil
	}
	return nil, ports.ErrZoneNotFound
}

type fakeGate struct {
	accepting bool
	delivery  bool
}

func (f *fakeGate) AcceptingOrders(_ context.Context, _ time.Time) (bool, error) {
	return f.accepting, nil
}

func (f *fakeGate) DeliveryEnabled(_ context.Context) (bool, error) {
	return f.delivery, nil
}

type fakeOrchestrator struct {
	archived []*domain.SubmittedOrder
	err      error
}

func (f *fakeOrchestrator) ArchiveOrder(_ context.Context, order *domain.SubmittedOrder) error {
	if f.err != nil {
		return f.err
	}
	f.archived = append(f.archived, order)
	return nil
}

var testNow = time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC)

func newTestService(gate *fakeGate, orchestrator *fakeOrchestrator) (*Service, *fakeCartStore) {
	carts := newFakeCartStore()
	catalog := &fakeCatalog{items: map[string]domain.ItemSnapshot{
		"cake": {ID: "cake", Name: "Cake", UnitPrice: decimal.NewFromFloat(45.00), Category: domain.CategoryReady, Available: true},
		"pie":  {ID: "pie", Name: "Pie", UnitPrice: decimal.NewFromFloat(30.00), Category: domain.CategoryMadeToOrder, Available: true},
	}}
	zones := &fakeZones{zones: map[string]ports.ZoneSnapshot{
		"z1": {ID: "z1", Name: "Centro", Fee: decimal.NewFromFloat(5.00)},
	}}
	opts := []Option{
		WithClock(ports.ClockFunc(func() time.Time { return testNow })),
		WithComposer(domain.MessageComposer{StoreName: "Delícias da Thai", StorePhone: "5573981943221"}),
	}
	if orchestrator != nil {
		opts = append(opts, WithOrchestrator(orchestrator))
	}
	return NewService(carts, catalog, zones, gate, opts...), carts
}

func TestAddItem_UnknownItem(t *testing.T) {
	svc, _ := newTestService(&fakeGate{accepting: true, delivery: true}, nil)
	_, err := svc.AddItem(context.Background(), "s1", "ghost")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ports.ErrItemNotFound)
}

func TestSetFulfillmentMode_GateDisablesDelivery(t *testing.T) {
	svc, _ := newTestService(&fakeGate{accepting: true, delivery: false}, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "cake")
	require.NoError(t, err)
	cart, err := svc.SetFulfillmentMode(ctx, "s1", domain.ModeDelivery)
	require.NoError(t, err)
	assert.Equal(t, domain.ModePickup, cart.Mode())
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _ := newTestService(&fakeGate{accepting: true, delivery: true}, nil)
	_, err := svc.Checkout(context.Background(), "s1")
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_StoreClosedLeavesCartUntouched(t *testing.T) {
	svc, carts := newTestService(&fakeGate{accepting: false, delivery: true}, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "cake")
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "s1")
	require.ErrorIs(t, err, domain.ErrStoreClosed)
	assert.Len(t, carts.carts["s1"].Lines(), 1)
}

func TestCheckout_PickupEndToEnd(t *testing.T) {
	orchestrator := &fakeOrchestrator{}
	svc, carts := newTestService(&fakeGate{accepting: true, delivery: true}, orchestrator)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "cake")
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, "s1", "cake", 2)
	require.NoError(t, err)
	name := "Ana"
	_, err = svc.UpdateCustomer(ctx, "s1", domain.CustomerPatch{Name: &name})
	require.NoError(t, err)

	submission, err := svc.Checkout(ctx, "s1")
	require.NoError(t, err)

	assert.Contains(t, submission.Message, "ANA")
	assert.Contains(t, submission.Message, "2x Cake")
	assert.Contains(t, submission.Message, "R$ 90.00")
	assert.NotContains(t, submission.Message, "Taxa de Entrega")
	assert.True(t, strings.HasPrefix(submission.Link, "https://wa.me/"))
	assert.True(t, submission.Archived)

	require.Len(t, orchestrator.archived, 1)
	assert.True(t, orchestrator.archived[0].Total.Equal(decimal.NewFromFloat(90.00)))
	assert.Equal(t, testNow, orchestrator.archived[0].SubmittedAt)

	assert.True(t, carts.carts["s1"].IsEmpty(), "cart resets after submission")
}

func TestCheckout_DeliveryWithZone(t *testing.T) {
	svc, _ := newTestService(&fakeGate{accepting: true, delivery: true}, nil)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "cake")
	require.NoError(t, err)
	_, err = svc.SetFulfillmentMode(ctx, "s1", domain.ModeDelivery)
	require.NoError(t, err)
	_, err = svc.SelectZone(ctx, "s1", "z1")
	require.NoError(t, err)
	name, addr := "Ana", "Rua A, 12"
	_, err = svc.UpdateCustomer(ctx, "s1", domain.CustomerPatch{Name: &name, Address: &addr})
	require.NoError(t, err)

	submission, err := svc.Checkout(ctx, "s1")
	require.NoError(t, err)
	assert.Contains(t, submission.Message, "*Taxa de Entrega:* R$ 5.00")
	assert.Contains(t, submission.Message, "*TOTAL A PAGAR: R$ 50.00*")
}

func TestCheckout_ArchiveFailureDoesNotUndoSubmission(t *testing.T) {
	orchestrator := &fakeOrchestrator{err: errors.New("archive down")}
	svc, carts := newTestService(&fakeGate{accepting: true, delivery: true}, orchestrator)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", "cake")
	require.NoError(t, err)
	name := "Ana"
	_, err = svc.UpdateCustomer(ctx, "s1", domain.CustomerPatch{Name: &name})
	require.NoError(t, err)

	submission, err := svc.Checkout(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, submission.Archived)
	assert.True(t, carts.carts["s1"].IsEmpty())
}

func TestIsAcceptingOrders_DelegatesToGate(t *testing.T) {
	svc, _ := newTestService(&fakeGate{accepting: true, delivery: true}, nil)
	open, err := svc.IsAcceptingOrders(context.Background())
	require.NoError(t, err)
	assert.True(t, open)
}

package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delicias-da-thai/storefront/internal/domains/settings/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/settings/ports"
)

type fakeSettingsRepo struct {
	settings *domain.StoreSettings
	manual   bool
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	settings, _ := domain.NewStoreSettings(true, nil)
	return &fakeSettingsRepo{settings: settings}
}

func (r *fakeSettingsRepo) Load(_ context.Context) (*domain.StoreSettings, error) {
	clone := *r.settings
	clone.Hours = append([]domain.WeekdayHours{}, r.settings.Hours...)
	return &clone, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, settings *domain.StoreSettings) (*domain.StoreSettings, error) {
	clone := *settings
	r.settings = &clone
	return settings, nil
}

func (r *fakeSettingsRepo) ManualOpen(_ context.Context) (bool, error) {
	return r.manual, nil
}

func (r *fakeSettingsRepo) SetManualOpen(_ context.Context, open bool) error {
	r.manual = open
	return nil
}

type fakeZoneRepo struct {
	zones map[string]*domain.DeliveryZone
}

func newFakeZoneRepo() *fakeZoneRepo {
	return &fakeZoneRepo{zones: map[string]*domain.DeliveryZone{}}
}

func (r *fakeZoneRepo) Save(_ context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error) {
	clone := *zone
	r.zones[zone.ID] = &clone
	return zone, nil
}

func (r *fakeZoneRepo) GetByID(_ context.Context, id string) (*domain.DeliveryZone, error) {
	zone, ok := r.zones[id]
	if !ok {
		return nil, ports.ErrZoneNotFound
	}
	clone := *zone
	return &clone, nil
}

func (r *fakeZoneRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.zones[id]; !ok {
		return ports.ErrZoneNotFound
	}
	delete(r.zones, id)
	return nil
}

func (r *fakeZoneRepo) List(_ context.Context) ([]*domain.DeliveryZone, error) {
	out := make([]*domain.DeliveryZone, 0, len(r.zones))
	for _, zone := range r.zones {
		clone := *zone
		out = append(out, &clone)
	}
	return out, nil
}

func openAllWeek() []domain.WeekdayHours {
	week := domain.DefaultWeek()
	for i := range week {
		week[i].Open = true
		week[i].Opens = "08:00"
		week[i].Closes = "18:00"
	}
	return week
}

func TestIsAcceptingOrdersRequiresManualFlag(t *testing.T) {
	repo := newFakeSettingsRepo()
	service := NewService(repo, newFakeZoneRepo())
	ctx := context.Background()

	_, err := service.UpdateSettings(ctx, ports.SettingsInput{
		DeliveryEnabled: true,
		Hours:           openAllWeek(),
	})
	require.NoError(t, err)

	noon := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	open, err := service.IsAcceptingOrders(ctx, noon)
	require.NoError(t, err)
	assert.False(t, open, "manual flag off keeps the store closed")

	require.NoError(t, service.SetManualOpen(ctx, true))
	open, err = service.IsAcceptingOrders(ctx, noon)
	require.NoError(t, err)
	assert.True(t, open)
}

func TestIsAcceptingOrdersReEvaluatesOnEveryCall(t *testing.T) {
	repo := newFakeSettingsRepo()
	service := NewService(repo, newFakeZoneRepo())
	ctx := context.Background()

	_, err := service.UpdateSettings(ctx, ports.SettingsInput{Hours: openAllWeek()})
	require.NoError(t, err)
	require.NoError(t, service.SetManualOpen(ctx, true))

	inside := time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC)
	outside := inside.Add(time.Minute)

	open, err := service.IsAcceptingOrders(ctx, inside)
	require.NoError(t, err)
	assert.True(t, open, "closing minute is inclusive")

	open, err = service.IsAcceptingOrders(ctx, outside)
	require.NoError(t, err)
	assert.False(t, open)
}

func TestUpdateSettingsRejectsBrokenCalendar(t *testing.T) {
	service := NewService(newFakeSettingsRepo(), newFakeZoneRepo())

	week := openAllWeek()
	week[2].Opens = "9am"
	_, err := service.UpdateSettings(context.Background(), ports.SettingsInput{Hours: week})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidTimeOfDay)
}

func TestDeliveryEnabledFollowsSettings(t *testing.T) {
	service := NewService(newFakeSettingsRepo(), newFakeZoneRepo())
	ctx := context.Background()

	enabled, err := service.DeliveryEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	_, err = service.UpdateSettings(ctx, ports.SettingsInput{DeliveryEnabled: false, Hours: openAllWeek()})
	require.NoError(t, err)

	enabled, err = service.DeliveryEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestZoneLifecycle(t *testing.T) {
	service := NewService(newFakeSettingsRepo(), newFakeZoneRepo())
	ctx := context.Background()

	zone, err := service.CreateZone(ctx, ports.ZoneInput{
		Neighborhood: "Centro",
		Fee:          decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, zone.ID)

	updated, err := service.UpdateZone(ctx, zone.ID, ports.ZoneInput{
		Neighborhood: "Centro",
		Fee:          decimal.NewFromInt(8),
	})
	require.NoError(t, err)
	assert.True(t, updated.Fee.Equal(decimal.NewFromInt(8)))

	require.NoError(t, service.DeleteZone(ctx, zone.ID))
	_, err = service.GetZone(ctx, zone.ID)
	require.ErrorIs(t, err, ports.ErrZoneNotFound)
}

func TestCreateZoneRejectsNegativeFee(t *testing.T) {
	service := NewService(newFakeSettingsRepo(), newFakeZoneRepo())

	_, err := service.CreateZone(context.Background(), ports.ZoneInput{
		Neighborhood: "Centro",
		Fee:          decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrNegativeFee)
}

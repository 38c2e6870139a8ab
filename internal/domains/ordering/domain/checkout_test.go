package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var checkoutNow = time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC)

func validPickupCart() *Cart {
	cart := NewCart()
	cart.AddItem(cakeItem())
	name := "Ana"
	cart.UpdateCustomer(CustomerPatch{Name: &name})
	return cart
}

func TestValidateCheckout_StoreClosedComesFirst(t *testing.T) {
	cart := NewCart()
	cart.AddItem(cakeItem())
	// Name is also blank; the closed store must still win.
	require.ErrorIs(t, ValidateCheckout(cart, false, checkoutNow), ErrStoreClosed)
}

func TestValidateCheckout_MissingName(t *testing.T) {
	cart := NewCart()
	cart.AddItem(cakeItem())
	name := "   "
	cart.UpdateCustomer(CustomerPatch{Name: &name})
	require.ErrorIs(t, ValidateCheckout(cart, true, checkoutNow), ErrMissingName)
}

func TestValidateCheckout_DeliveryChecksInOrder(t *testing.T) {
	cart := validPickupCart()
	cart.SetFulfillmentMode(ModeDelivery)
	require.ErrorIs(t, ValidateCheckout(cart, true, checkoutNow), ErrMissingZone)

	cart.SelectZone("z1", "Centro", decimal.NewFromFloat(5.00))
	require.ErrorIs(t, ValidateCheckout(cart, true, checkoutNow), ErrMissingAddress)

	addr := "Rua A, 12"
	cart.UpdateCustomer(CustomerPatch{Address: &addr})
	require.NoError(t, ValidateCheckout(cart, true, checkoutNow))
}

func TestValidateCheckout_ScheduleRequiredForMadeToOrder(t *testing.T) {
	cart := validPickupCart()
	cart.AddItem(pieItem())
	require.ErrorIs(t, ValidateCheckout(cart, true, checkoutNow), ErrScheduleRequired)

	at := checkoutNow.Add(24 * time.Hour)
	cart.UpdateCustomer(CustomerPatch{ScheduledAt: &at})
	require.NoError(t, ValidateCheckout(cart, true, checkoutNow))
}

func TestValidateCheckout_ScheduleMustBeStrictlyFuture(t *testing.T) {
	cart := validPickupCart()

	past := checkoutNow.Add(-time.Minute)
	cart.UpdateCustomer(CustomerPatch{ScheduledAt: &past})
	require.ErrorIs(t, ValidateCheckout(cart, true, checkoutNow), ErrScheduleInPast)

	exactlyNow := checkoutNow
	cart.UpdateCustomer(CustomerPatch{ScheduledAt: &exactlyNow})
	require.ErrorIs(t, ValidateCheckout(cart, true, checkoutNow), ErrScheduleInPast)
}

func TestValidateCheckout_NeverMutatesTheCart(t *testing.T) {
	cart := validPickupCart()
	cart.AddItem(pieItem())
	before := cart.Lines()

	_ = ValidateCheckout(cart, true, checkoutNow)

	require.Equal(t, before, cart.Lines())
	require.Equal(t, ModePickup, cart.Mode())
}

func TestValidateCheckout_ImmediatePickupSucceeds(t *testing.T) {
	require.NoError(t, ValidateCheckout(validPickupCart(), true, checkoutNow))
}

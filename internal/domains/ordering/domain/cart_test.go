package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cakeItem() ItemSnapshot {
	return ItemSnapshot{
		ID:        "cake-1",
		Name:      "Cake",
		UnitPrice: decimal.NewFromFloat(45.00),
		Category:  CategoryReady,
		Available: true,
	}
}

func pieItem() ItemSnapshot {
	return ItemSnapshot{
		ID:        "pie-1",
		Name:      "Pie",
		UnitPrice: decimal.NewFromFloat(30.00),
		Category:  CategoryMadeToOrder,
		Available: true,
	}
}

func TestAddItem_SameItemTwiceMergesIntoOneLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(cakeItem())
	cart.AddItem(cakeItem())

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(cakeItem())
	cart.SetQuantity(cakeItem(), 0)
	assert.True(t, cart.IsEmpty())
}

func TestSetQuantity_NonPositiveInsertIsIgnored(t *testing.T) {
	cart := NewCart()
	cart.SetQuantity(cakeItem(), 0)
	cart.SetQuantity(cakeItem(), -3)
	assert.True(t, cart.IsEmpty())
}

func TestSetQuantity_ExplicitOverride(t *testing.T) {
	cart := NewCart()
	cart.AddItem(cakeItem())
	cart.SetQuantity(cakeItem(), 5)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(cakeItem())
	cart.Remove("nope")
	assert.Len(t, cart.Lines(), 1)
}

func TestLines_PreserveInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(pieItem())
	cart.AddItem(cakeItem())
	cart.AddItem(pieItem())

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "pie-1", lines[0].Item.ID)
	assert.Equal(t, "cake-1", lines[1].Item.ID)
}

func TestSetFulfillmentMode_DeliveryRejectedWhileDisabled(t *testing.T) {
	cart := NewCart()
	cart.SetDeliveryEnabled(false)
	cart.SetFulfillmentMode(ModeDelivery)
	assert.Equal(t, ModePickup, cart.Mode())
}

func TestSetDeliveryEnabled_OffForcesPickupAndClearsDeliveryFields(t *testing.T) {
	cart := NewCart()
	cart.SetFulfillmentMode(ModeDelivery)
	cart.SelectZone("z1", "Centro", decimal.NewFromFloat(5.00))
	addr := "Rua A, 12"
	cart.UpdateCustomer(CustomerPatch{Address: &addr})

	cart.SetDeliveryEnabled(false)

	customer := cart.Customer()
	assert.Equal(t, ModePickup, cart.Mode())
	assert.Empty(t, customer.Address)
	assert.Empty(t, customer.ZoneID)
	assert.Empty(t, customer.ZoneName)
	assert.True(t, customer.DeliveryFee.IsZero())
}

func TestSetFulfillmentMode_PickupZeroesFeeButKeepsZoneAndAddress(t *testing.T) {
	cart := NewCart()
	cart.SetFulfillmentMode(ModeDelivery)
	cart.SelectZone("z1", "Centro", decimal.NewFromFloat(5.00))
	addr := "Rua A, 12"
	cart.UpdateCustomer(CustomerPatch{Address: &addr})

	cart.SetFulfillmentMode(ModePickup)

	customer := cart.Customer()
	assert.True(t, customer.DeliveryFee.IsZero())
	assert.Equal(t, "z1", customer.ZoneID)
	assert.Equal(t, "Rua A, 12", customer.Address)
}

func TestSetFulfillmentMode_BackToDeliveryRestoresFeeFromZoneSnapshot(t *testing.T) {
	cart := NewCart()
	cart.SetFulfillmentMode(ModeDelivery)
	cart.SelectZone("z1", "Centro", decimal.NewFromFloat(5.00))
	cart.SetFulfillmentMode(ModePickup)

	cart.SetFulfillmentMode(ModeDelivery)

	assert.True(t, cart.Customer().DeliveryFee.Equal(decimal.NewFromFloat(5.00)))
}

func TestSelectZone_FeeIsASnapshot(t *testing.T) {
	cart := NewCart()
	cart.SetFulfillmentMode(ModeDelivery)
	fee := decimal.NewFromFloat(7.50)
	cart.SelectZone("z2", "Pontal", fee)

	// Mutating the caller's value must not leak into the cart.
	fee = fee.Add(decimal.NewFromInt(100))
	assert.True(t, cart.Customer().DeliveryFee.Equal(decimal.NewFromFloat(7.50)))
}

func TestTotals(t *testing.T) {
	cart := NewCart()
	cart.AddItem(cakeItem())
	cart.AddItem(cakeItem())

	require.True(t, cart.Subtotal().Equal(decimal.NewFromFloat(90.00)))
	assert.True(t, cart.GrandTotal().Equal(cart.Subtotal()), "pickup total equals subtotal")

	cart.SetFulfillmentMode(ModeDelivery)
	cart.SelectZone("z1", "Centro", decimal.NewFromFloat(5.00))
	assert.True(t, cart.GrandTotal().Equal(decimal.NewFromFloat(95.00)))
}

func TestClear_ResetsEverything(t *testing.T) {
	cart := NewCart()
	cart.AddItem(cakeItem())
	cart.SetFulfillmentMode(ModeDelivery)
	cart.SelectZone("z1", "Centro", decimal.NewFromFloat(5.00))
	name := "Ana"
	cart.UpdateCustomer(CustomerPatch{Name: &name})

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, ModePickup, cart.Mode())
	assert.Empty(t, cart.Customer().Name)
	assert.True(t, cart.DeliveryEnabled(), "store-wide flag survives a reset")
}

func TestHasMadeToOrderLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(cakeItem())
	assert.False(t, cart.HasMadeToOrderLine())

	unavailable := cakeItem()
	unavailable.ID = "cake-2"
	unavailable.Available = false
	cart.AddItem(unavailable)
	assert.True(t, cart.HasMadeToOrderLine(), "unavailable ready item counts as made-to-order")
}

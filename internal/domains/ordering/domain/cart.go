package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/delicias-da-thai/storefront/internal/shared/money"
)

// FulfillmentMode selects pickup at the store or delivery to an address.
type FulfillmentMode string

const (
	ModePickup   FulfillmentMode = "retirada"
	ModeDelivery FulfillmentMode = "entrega"
)

// CartLine pairs an item snapshot with a positive quantity. Lines never exist
// at quantity zero; reducing to zero removes the line.
type CartLine struct {
	Item     ItemSnapshot
	Quantity int
}

// Total is the line's quantity times its unit price.
func (l CartLine) Total() decimal.Decimal {
	return money.LineTotal(l.Item.UnitPrice, l.Quantity)
}

// CustomerDetails carries the buyer-entered fields of the order in progress.
// ZoneFee is the snapshot taken when the zone was selected; DeliveryFee is the
// fee currently applied to the total and is always zero in pickup mode.
type CustomerDetails struct {
	Name        string
	Phone       string
	Address     string
	ZoneID      string
	ZoneName    string
	ZoneFee     decimal.Decimal
	DeliveryFee decimal.Decimal
	Notes       string
	ScheduledAt *time.Time
}

// CustomerPatch shallow-merges into CustomerDetails; nil fields are left
// untouched. Validation is centralized in the checkout validator, not here.
type CustomerPatch struct {
	Name          *string
	Phone         *string
	Address       *string
	Notes         *string
	ScheduledAt   *time.Time
	ClearSchedule bool
}

// Cart is the order-in-progress aggregate: insertion-ordered lines, the chosen
// fulfillment mode, and the customer details. It is owned by a single session
// and mutated synchronously; there is no internal locking.
type Cart struct {
	lines           []CartLine
	mode            FulfillmentMode
	deliveryEnabled bool
	customer        CustomerDetails
}

// NewCart returns an empty cart in pickup mode with delivery selectable.
func NewCart() *Cart {
	return &Cart{
		mode:            ModePickup,
		deliveryEnabled: true,
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	return append([]CartLine{}, c.lines...)
}

// Mode returns the current fulfillment mode.
func (c *Cart) Mode() FulfillmentMode { return c.mode }

// DeliveryEnabled reports whether delivery is currently selectable.
func (c *Cart) DeliveryEnabled() bool { return c.deliveryEnabled }

// Customer returns a copy of the customer details.
func (c *Cart) Customer() CustomerDetails { return c.customer }

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// AddItem increments the quantity of an existing line or inserts a new line
// with quantity one. Re-adding never duplicates a line.
func (c *Cart) AddItem(item ItemSnapshot) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// SetQuantity forces a line to an explicit quantity. A quantity of zero or
// less removes an existing line and ignores an absent one.
func (c *Cart) SetQuantity(item ItemSnapshot, quantity int) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
				return
			}
			c.lines[i].Quantity = quantity
			return
		}
	}
	if quantity <= 0 {
		return
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: quantity})
}

// Remove drops the line with the given item id. Absent ids are a no-op.
func (c *Cart) Remove(itemID string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear resets the cart to its empty state, keeping the process-wide delivery
// flag. Called after a successful submission.
func (c *Cart) Clear() {
	c.lines = nil
	c.mode = ModePickup
	c.customer = CustomerDetails{}
}

// SetDeliveryEnabled applies the store-wide delivery toggle. Turning delivery
// off forces pickup and clears the delivery-specific fields; turning it on
// changes nothing else.
func (c *Cart) SetDeliveryEnabled(enabled bool) {
	c.deliveryEnabled = enabled
	if enabled {
		return
	}
	c.mode = ModePickup
	c.customer.Address = ""
	c.customer.ZoneID = ""
	c.customer.ZoneName = ""
	c.customer.ZoneFee = decimal.Zero
	c.customer.DeliveryFee = decimal.Zero
}

// SetFulfillmentMode switches between pickup and delivery. Selecting delivery
// while the store-wide flag is off is a silent no-op. Switching to pickup
// zeroes the applied fee but keeps the zone and address so the customer does
// not retype them; switching back to delivery re-derives the fee from the
// stored zone snapshot.
func (c *Cart) SetFulfillmentMode(mode FulfillmentMode) {
	switch mode {
	case ModePickup:
		c.mode = ModePickup
		c.customer.DeliveryFee = decimal.Zero
	case ModeDelivery:
		if !c.deliveryEnabled {
			return
		}
		c.mode = ModeDelivery
		c.customer.DeliveryFee = c.customer.ZoneFee
	}
}

// SelectZone records the chosen delivery zone as a snapshot: later edits to
// the zone table never retroactively change a fee already copied here.
func (c *Cart) SelectZone(id, name string, fee decimal.Decimal) {
	c.customer.ZoneID = id
	c.customer.ZoneName = name
	c.customer.ZoneFee = fee
	if c.mode == ModeDelivery {
		c.customer.DeliveryFee = fee
	}
}

// ClearZone resets the zone selection and any applied fee.
func (c *Cart) ClearZone() {
	c.customer.ZoneID = ""
	c.customer.ZoneName = ""
	c.customer.ZoneFee = decimal.Zero
	c.customer.DeliveryFee = decimal.Zero
}

// UpdateCustomer shallow-merges the patch into the customer details.
func (c *Cart) UpdateCustomer(patch CustomerPatch) {
	if patch.Name != nil {
		c.customer.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.customer.Phone = *patch.Phone
	}
	if patch.Address != nil {
		c.customer.Address = *patch.Address
	}
	if patch.Notes != nil {
		c.customer.Notes = *patch.Notes
	}
	if patch.ClearSchedule {
		c.customer.ScheduledAt = nil
	} else if patch.ScheduledAt != nil {
		at := *patch.ScheduledAt
		c.customer.ScheduledAt = &at
	}
}

// HasMadeToOrderLine reports whether any line requires advance scheduling.
func (c *Cart) HasMadeToOrderLine() bool {
	for _, line := range c.lines {
		if line.Item.MadeToOrder() {
			return true
		}
	}
	return false
}

// Subtotal sums quantity times unit price over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Total())
	}
	return total
}

// GrandTotal adds the delivery fee to the subtotal in delivery mode only.
func (c *Cart) GrandTotal() decimal.Decimal {
	if c.mode == ModeDelivery {
		return c.Subtotal().Add(c.customer.DeliveryFee)
	}
	return c.Subtotal()
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmittedOrder is the archived record of a checkout that passed validation.
// It is written after the message is composed; the storefront never mutates it.
type SubmittedOrder struct {
	ID           string
	CustomerName string
	Mode         FulfillmentMode
	Subtotal     decimal.Decimal
	DeliveryFee  decimal.Decimal
	Total        decimal.Decimal
	ZoneName     string
	ScheduledAt  *time.Time
	Message      string
	SubmittedAt  time.Time
}

// NewSubmittedOrder captures the cart's state at submission time.
func NewSubmittedOrder(id string, cart *Cart, message string, submittedAt time.Time) *SubmittedOrder {
	customer := cart.Customer()
	order := &SubmittedOrder{
		ID:           id,
		CustomerName: customer.Name,
		Mode:         cart.Mode(),
		Subtotal:     cart.Subtotal(),
		DeliveryFee:  customer.DeliveryFee,
		Total:        cart.GrandTotal(),
		ZoneName:     customer.ZoneName,
		Message:      message,
		SubmittedAt:  submittedAt,
	}
	if customer.ScheduledAt != nil {
		at := *customer.ScheduledAt
		order.ScheduledAt = &at
	}
	return order
}

package domain

import (
	"errors"
	"strings"
	"time"
)

// Checkout failures are categorical, one surfaced at a time. None of them
// mutates the cart; the caller re-prompts the customer and may resubmit.
var (
	ErrStoreClosed         = errors.New("store is not accepting orders right now")
	ErrMissingName         = errors.New("customer name is required")
	ErrDeliveryUnavailable = errors.New("delivery is not available right now")
	ErrMissingZone         = errors.New("a delivery zone must be selected")
	ErrMissingAddress      = errors.New("delivery address is required")
	ErrScheduleInPast      = errors.New("scheduled time must be in the future")
	ErrScheduleRequired    = errors.New("made-to-order items require a scheduled time")
)

// ValidateCheckout runs the submission checks in a fixed order, stopping at
// the first failure. Cheap, universally blocking checks come first so the
// customer is prompted as few times as possible when several conditions fail
// at once: store open, then identity, then delivery fields, then scheduling.
func ValidateCheckout(cart *Cart, acceptingOrders bool, now time.Time) error {
	if !acceptingOrders {
		return ErrStoreClosed
	}
	customer := cart.Customer()
	if strings.TrimSpace(customer.Name) == "" {
		return ErrMissingName
	}
	if cart.Mode() == ModeDelivery {
		if !cart.DeliveryEnabled() {
			return ErrDeliveryUnavailable
		}
		if customer.ZoneID == "" {
			return ErrMissingZone
		}
		if strings.TrimSpace(customer.Address) == "" {
			return ErrMissingAddress
		}
	}
	if customer.ScheduledAt != nil {
		if !customer.ScheduledAt.After(now) {
			return ErrScheduleInPast
		}
	} else if cart.HasMadeToOrderLine() {
		return ErrScheduleRequired
	}
	return nil
}

package application

import (
	"errors"
	"fmt"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
)

var (
	// ErrInvalidInput signals the request referenced something that does not exist.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrEmptyCart rejects a checkout attempt on a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
)

// CheckoutFailures lists the categorical validation outcomes in the order the
// validator evaluates them. HTTP adapters use it to map failures to responses.
var CheckoutFailures = []error{
	domain.ErrStoreClosed,
	domain.ErrMissingName,
	domain.ErrDeliveryUnavailable,
	domain.ErrMissingZone,
	domain.ErrMissingAddress,
	domain.ErrScheduleInPast,
	domain.ErrScheduleRequired,
}

// IsCheckoutFailure reports whether err is one of the categorical validation
// outcomes rather than an infrastructure error.
func IsCheckoutFailure(err error) bool {
	for _, failure := range CheckoutFailures {
		if errors.Is(err, failure) {
			return true
		}
	}
	return errors.Is(err, ErrEmptyCart)
}

// FailureCode returns the stable identifier for a categorical checkout
// failure, or the empty string for anything else.
func FailureCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrStoreClosed):
		return "store_closed"
	case errors.Is(err, domain.ErrMissingName):
		return "missing_name"
	case errors.Is(err, domain.ErrDeliveryUnavailable):
		return "delivery_unavailable"
	case errors.Is(err, domain.ErrMissingZone):
		return "missing_zone"
	case errors.Is(err, domain.ErrMissingAddress):
		return "missing_address"
	case errors.Is(err, domain.ErrScheduleInPast):
		return "schedule_in_past"
	case errors.Is(err, domain.ErrScheduleRequired):
		return "schedule_required"
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	}
	return ""
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrItemNotFound) || errors.Is(err, ports.ErrZoneNotFound) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

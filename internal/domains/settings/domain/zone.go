package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyNeighborhood = errors.New("delivery zone neighborhood is required")
	ErrNegativeFee       = errors.New("delivery fee must be zero or positive")
)

// DeliveryZone is a named area with a flat delivery fee.
type DeliveryZone struct {
	ID           string
	Neighborhood string
	Fee          decimal.Decimal
}

// NewDeliveryZone validates and builds a delivery zone.
func NewDeliveryZone(id, neighborhood string, fee decimal.Decimal) (*DeliveryZone, error) {
	zone := &DeliveryZone{ID: id}
	if err := zone.Rename(neighborhood); err != nil {
		return nil, err
	}
	if err := zone.SetFee(fee); err != nil {
		return nil, err
	}
	return zone, nil
}

// Rename trims and validates the neighborhood name.
func (z *DeliveryZone) Rename(neighborhood string) error {
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return ErrEmptyNeighborhood
	}
	z.Neighborhood = neighborhood
	return nil
}

// SetFee rejects negative fees.
func (z *DeliveryZone) SetFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return ErrNegativeFee
	}
	z.Fee = fee
	return nil
}

// Validate re-applies invariants for persistence.
func (z *DeliveryZone) Validate() error {
	if err := z.Rename(z.Neighborhood); err != nil {
		return err
	}
	return z.SetFee(z.Fee)
}

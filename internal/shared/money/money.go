// Package money centralizes currency arithmetic and formatting for the storefront.
// Amounts are decimal values; every rendered amount carries exactly two decimal
// digits, rounded half away from zero.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is the additive identity for amounts.
var Zero = decimal.Zero

// FromFloat converts a float price into a decimal amount.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Format renders an amount as Brazilian currency with exactly two decimals.
func Format(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}

// Parse reads an amount previously rendered by Format.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

// LineTotal multiplies a unit price by a quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Category says how a product is normally fulfilled.
type Category string

const (
	CategoryReady       Category = "pronta-entrega"
	CategoryMadeToOrder Category = "encomenda"
)

var (
	ErrEmptyName       = errors.New("product name is required")
	ErrNegativePrice   = errors.New("product price must be zero or positive")
	ErrInvalidCategory = errors.New("product category is invalid")
)

// Product is the catalog aggregate managed by the operator panel. The
// ordering context only ever reads snapshots of it.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    Category
	ImageURL    string
	Description string
	Available   bool
}

// NewProduct validates and builds a catalog product. New products start
// available, matching the operator panel's default.
func NewProduct(id, name string, price decimal.Decimal, category Category) (*Product, error) {
	product := &Product{ID: id, Available: true}
	if err := product.Rename(name); err != nil {
		return nil, err
	}
	if err := product.SetPrice(price); err != nil {
		return nil, err
	}
	if err := product.SetCategory(category); err != nil {
		return nil, err
	}
	return product, nil
}

// Rename trims and validates the display name.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// SetPrice rejects negative prices.
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	p.Price = price
	return nil
}

// SetCategory accepts the two known fulfillment categories only.
func (p *Product) SetCategory(category Category) error {
	switch category {
	case CategoryReady, CategoryMadeToOrder:
		p.Category = category
		return nil
	default:
		return ErrInvalidCategory
	}
}

// SetAvailable toggles the ready-stock flag. An unavailable ready product
// behaves as made-to-order until the flag comes back.
func (p *Product) SetAvailable(available bool) {
	p.Available = available
}

// MadeToOrder mirrors the ordering-side rule: made-to-order by category, or a
// ready product whose availability flag is off.
func (p *Product) MadeToOrder() bool {
	return p.Category == CategoryMadeToOrder || !p.Available
}

// Validate re-applies invariants for persistence.
func (p *Product) Validate() error {
	if err := p.Rename(p.Name); err != nil {
		return err
	}
	if err := p.SetPrice(p.Price); err != nil {
		return err
	}
	return p.SetCategory(p.Category)
}

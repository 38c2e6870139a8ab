package domain

import "github.com/shopspring/decimal"

// Category classifies how a catalog item is fulfilled.
type Category string

const (
	// CategoryReady items can leave with the customer immediately.
	CategoryReady Category = "pronta-entrega"
	// CategoryMadeToOrder items require advance scheduling.
	CategoryMadeToOrder Category = "encomenda"
)

// ItemSnapshot is the read-only view of a catalog item the cart works with.
// The catalog owns the live record; the cart only ever sees snapshots.
type ItemSnapshot struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Category  Category
	Available bool
}

// MadeToOrder is the single source of truth for the scheduling rule: an item
// needs a scheduled date when its category says so, or when its availability
// flag forces an otherwise-ready item into made-to-order behavior. The checkout
// validator and the message composer both go through here.
func (i ItemSnapshot) MadeToOrder() bool {
	return i.Category == CategoryMadeToOrder || !i.Available
}

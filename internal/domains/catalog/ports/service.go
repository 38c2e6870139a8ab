package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/delicias-da-thai/storefront/internal/domains/catalog/domain"
)

// ProductInput carries the operator-entered fields for create/update.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Category    domain.Category
	ImageURL    string
	Description string
}

// Service exposes catalog use cases to adapters.
type Service interface {
	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Product, error)
}

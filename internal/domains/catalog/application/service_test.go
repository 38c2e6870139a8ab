package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delicias-da-thai/storefront/internal/domains/catalog/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/catalog/ports"
)

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*domain.Product{}}
}

func (r *fakeProductRepo) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	clone := *product
	r.products[product.ID] = &clone
	return product, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		out = append(out, &clone)
	}
	return out, nil
}

func TestCreateProductStartsAvailable(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewService(repo)

	created, err := service.CreateProduct(context.Background(), ports.ProductInput{
		Name:     "Bolo de Cenoura",
		Price:    decimal.NewFromInt(45),
		Category: domain.CategoryReady,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Available)
	assert.False(t, created.MadeToOrder())
}

func TestCreateProductRejectsInvalidInput(t *testing.T) {
	service := NewService(newFakeProductRepo())

	_, err := service.CreateProduct(context.Background(), ports.ProductInput{
		Name:     "  ",
		Price:    decimal.NewFromInt(10),
		Category: domain.CategoryReady,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = service.CreateProduct(context.Background(), ports.ProductInput{
		Name:     "Torta",
		Price:    decimal.NewFromInt(10),
		Category: "promocao",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestUpdateProductRewritesAllFields(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewService(repo)

	created, err := service.CreateProduct(context.Background(), ports.ProductInput{
		Name:     "Torta de Limao",
		Price:    decimal.NewFromInt(60),
		Category: domain.CategoryReady,
	})
	require.NoError(t, err)

	updated, err := service.UpdateProduct(context.Background(), created.ID, ports.ProductInput{
		Name:        "Torta de Limão Siciliano",
		Price:       decimal.NewFromInt(75),
		Category:    domain.CategoryMadeToOrder,
		Description: "Sob encomenda, 48h de antecedência",
	})
	require.NoError(t, err)

	assert.Equal(t, "Torta de Limão Siciliano", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, domain.CategoryMadeToOrder, updated.Category)
	assert.True(t, updated.MadeToOrder())
}

func TestUpdateProductUnknownID(t *testing.T) {
	service := NewService(newFakeProductRepo())

	_, err := service.UpdateProduct(context.Background(), "missing", ports.ProductInput{
		Name:     "Qualquer",
		Price:    decimal.NewFromInt(1),
		Category: domain.CategoryReady,
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSetAvailabilityTurnsReadyProductIntoMadeToOrder(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewService(repo)

	created, err := service.CreateProduct(context.Background(), ports.ProductInput{
		Name:     "Brownie",
		Price:    decimal.NewFromInt(12),
		Category: domain.CategoryReady,
	})
	require.NoError(t, err)

	toggled, err := service.SetAvailability(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, toggled.Available)
	assert.True(t, toggled.MadeToOrder())

	back, err := service.SetAvailability(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.False(t, back.MadeToOrder())
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewService(repo)

	created, err := service.CreateProduct(context.Background(), ports.ProductInput{
		Name:     "Pudim",
		Price:    decimal.NewFromInt(30),
		Category: domain.CategoryReady,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))

	_, err = service.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

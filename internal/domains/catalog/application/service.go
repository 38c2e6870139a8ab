package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/delicias-da-thai/storefront/internal/domains/catalog/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/catalog/ports"
)

// Service orchestrates catalog use cases for the operator panel.
type Service struct {
	repo  ports.Repository
	newID func() string
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo, newID: uuid.NewString}
}

func (s *Service) CreateProduct(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	product, err := domain.NewProduct(s.newID(), input.Name, input.Price, input.Category)
	if err != nil {
		return nil, mapError(err)
	}
	product.ImageURL = input.ImageURL
	product.Description = input.Description
	return s.repo.Save(ctx, product)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Rename(input.Name); err != nil {
		return nil, mapError(err)
	}
	if err := product.SetPrice(input.Price); err != nil {
		return nil, mapError(err)
	}
	if err := product.SetCategory(input.Category); err != nil {
		return nil, mapError(err)
	}
	product.ImageURL = input.ImageURL
	product.Description = input.Description
	return s.repo.Save(ctx, product)
}

// SetAvailability flips the ready-stock flag without touching anything else.
func (s *Service) SetAvailability(ctx context.Context, id string, available bool) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.SetAvailable(available)
	return s.repo.Save(ctx, product)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)

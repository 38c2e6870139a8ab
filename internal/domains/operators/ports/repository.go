package ports

import (
	"context"
	"errors"

	"github.com/delicias-da-thai/storefront/internal/domains/operators/domain"
)

var ErrNotFound = errors.New("operator not found")
var ErrInvalidCredentials = errors.New("invalid username or password")

type Repository interface {
	Save(ctx context.Context, operator *domain.Operator) (*domain.Operator, error)
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*domain.Operator, error)
}

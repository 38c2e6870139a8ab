package ports

import (
	"context"

	"github.com/delicias-da-thai/storefront/internal/domains/operators/domain"
)

// Service exposes operator account use cases to adapters.
type Service interface {
	CreateOperator(ctx context.Context, username, password, displayName string) (*domain.Operator, error)
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
	Delete(ctx context.Context, username string) error
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, username string)
	Authenticate(ctx context.Context, token string) (string, error)
}

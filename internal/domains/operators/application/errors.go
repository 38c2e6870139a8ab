package application

import (
	"errors"
	"fmt"

	"github.com/delicias-da-thai/storefront/internal/domains/operators/domain"
)

// ErrInvalidInput signals the request violated an account invariant.
var ErrInvalidInput = errors.New("invalid operator input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyUsername) ||
		errors.Is(err, domain.ErrEmptyPassword) ||
		errors.Is(err, domain.ErrWeakPassword) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

package application

import (
	"errors"
	"fmt"

	"github.com/delicias-da-thai/storefront/internal/domains/settings/domain"
)

// ErrInvalidInput signals the request violated a configuration invariant.
var ErrInvalidInput = errors.New("invalid settings input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrDuplicateWeekday) ||
		errors.Is(err, domain.ErrIncompleteWeek) ||
		errors.Is(err, domain.ErrInvalidTimeOfDay) ||
		errors.Is(err, domain.ErrEmptyNeighborhood) ||
		errors.Is(err, domain.ErrNegativeFee) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

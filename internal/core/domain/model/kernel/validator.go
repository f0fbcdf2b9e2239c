package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

const (
	PriceParam    = "price"
	QuantityParam = "quantity"
)

var (
	// ErrPriceIsNegative is the cause attached to a price violation.
	ErrPriceIsNegative = errors.New("price cannot be negative")

	// ErrQuantityIsNotPositive is the cause attached to a quantity violation.
	ErrQuantityIsNotPositive = errors.New("quantity must be greater than zero")
)

// ValidateProduct checks the price/quantity pair of a line item.
//
// Returns nil when price >= 0 and quantity > 0. Otherwise it returns an
// *errs.ValidationError holding one violation per broken rule, price first.
// Each violation is an *errs.ValueIsInvalidError whose cause wraps
// ErrPriceIsNegative or ErrQuantityIsNotPositive, so callers can tell the
// cases apart with errors.Is:
//
//	err := kernel.ValidateProduct(-1, 0)
//	errors.Is(err, kernel.ErrPriceIsNegative)       // true
//	errors.Is(err, kernel.ErrQuantityIsNotPositive) // true
//
// NaN is rejected as a price because it does not compare >= 0.
func ValidateProduct(price float64, quantity int) error {
	if err := errs.NewValidationError(validatePrice(price), validateQuantity(quantity)); err != nil {
		return err
	}
	return nil
}

func validatePrice(price float64) error {
	if price >= 0 {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(PriceParam, fmt.Errorf("%w: got %v", ErrPriceIsNegative, price))
}

func validateQuantity(quantity int) error {
	if quantity > 0 {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(QuantityParam, fmt.Errorf("%w: got %d", ErrQuantityIsNotPositive, quantity))
}

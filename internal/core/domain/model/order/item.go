package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

var (
	_ kernel.Calculable  = (*Item)(nil)
	_ kernel.Validatable = (*Item)(nil)
)

// Item is a single order line.
//
// Item follows these invariants:
//   - unitPrice >= 0
//   - quantity > 0
//   - Can only be created through NewItem
//
// The name is free text and is never validated.
type Item struct {
	name      string
	unitPrice float64
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates an Item after checking price and quantity with
// kernel.ValidateProduct.
//
// Example:
//
//	item, err := order.NewItem("Notebook", 12.5, 4)
//	if err != nil {
//	    // err wraps kernel.ErrPriceIsNegative and/or kernel.ErrQuantityIsNotPositive
//	}
//	item.Subtotal() // 50
func NewItem(name string, unitPrice float64, quantity int) (*Item, error) {
	if err := kernel.ValidateProduct(unitPrice, quantity); err != nil {
		return nil, err
	}

	return &Item{
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the item was built by NewItem and still satisfies
// the price and quantity rules.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	if err := i.guard.Validate(ErrItemIsNotConstructed); err != nil {
		return err
	}
	return kernel.ValidateProduct(i.unitPrice, i.quantity)
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns the number of units.
func (i *Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i *Item) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

// Calculate returns the subtotal.
func (i *Item) Calculate() float64 {
	return i.Subtotal()
}

// Rename replaces the item's name. Any string is accepted.
func (i *Item) Rename(name string) {
	i.name = name
}

// ChangePrice sets a new unit price. On a validation error the item keeps
// its previous price.
func (i *Item) ChangePrice(unitPrice float64) error {
	if err := kernel.ValidateProduct(unitPrice, i.quantity); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

// ChangeQuantity sets a new quantity. On a validation error the item keeps
// its previous quantity.
func (i *Item) ChangeQuantity(quantity int) error {
	if err := kernel.ValidateProduct(i.unitPrice, quantity); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

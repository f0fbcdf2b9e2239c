package order

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

var (
	_ kernel.Calculable  = (*Order)(nil)
	_ kernel.Validatable = (*Order)(nil)
)

// Order is the aggregate root holding an ordered list of items.
//
// Order follows these invariants:
//   - Total is the sum of item subtotals, computed on every call
//   - Items keep the order in which they were added, duplicates included
//   - Can only be created through NewOrder
//
// An Order owns its items. Callers should not add the same *Item to more
// than one order.
type Order struct {
	items []*Item

	guard guard.ConstructorGuard
}

// NewOrder creates an empty order.
func NewOrder() *Order {
	return &Order{
		items: make([]*Item, 0),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the Order was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AddItem appends item to the order.
//
// Items are valid by construction, so price and quantity are not checked
// again. AddItem only rejects a nil item or one that did not come from NewItem.
func (o *Order) AddItem(item *Item) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}
	if err := item.guard.Validate(ErrItemIsNotConstructed); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// Items returns the order's items in insertion order. The slice is a copy;
// appending to or reordering it does not affect the order.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// Len returns the number of items.
func (o *Order) Len() int {
	return len(o.items)
}

// IsEmpty reports whether the order has no items.
func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// Total returns the sum of the item subtotals, or 0 for an empty order.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// Calculate returns the total.
func (o *Order) Calculate() float64 {
	return o.Total()
}

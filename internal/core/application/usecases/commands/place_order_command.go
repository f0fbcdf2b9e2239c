// Package commands contains the write-side use cases of the ordering model.
// Every command is created by a constructor that validates its input and is
// carried to a handler that builds or changes domain objects.
package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// ItemLine is the raw input for one order item. It is not validated until the
// handler turns it into an order.Item.
type ItemLine struct {
	Name      string
	UnitPrice float64
	Quantity  int
}

// NewItemLine is a convenience constructor for ItemLine.
func NewItemLine(name string, unitPrice float64, quantity int) ItemLine {
	return ItemLine{Name: name, UnitPrice: unitPrice, Quantity: quantity}
}

// PlaceOrderCommand represents a request to build an order from a list of lines.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    NewItemLine("Notebook", 10, 2),
//	    NewItemLine("Pen", 5, 3),
//	)
//	if err != nil {
//	    return err
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Println(o.Total()) // 35
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	lines []ItemLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command from one or more lines.
// Returns ErrOrderLinesAreRequired when no lines are given.
func NewPlaceOrderCommand(lines ...ItemLine) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLines(lines); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Lines returns a copy of the requested lines.
func (c PlaceOrderCommand) Lines() []ItemLine {
	return append([]ItemLine(nil), c.lines...)
}

func (c *PlaceOrderCommand) setLines(lines []ItemLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	c.lines = append([]ItemLine(nil), lines...)
	return nil
}
